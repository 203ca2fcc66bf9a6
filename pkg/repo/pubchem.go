package repo

import "context"

// CompoundInfo holds the basic information for a chemical compound.
type CompoundInfo struct {
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	IUPACName        string `json:"iupac_name"`
	SMILES           string `json:"smiles"`
}

// PubChemRepo resolves compound names or CAS numbers through PubChem.
type PubChemRepo interface {
	GetCompound(ctx context.Context, nameOrCAS string) (*CompoundInfo, error)
}
