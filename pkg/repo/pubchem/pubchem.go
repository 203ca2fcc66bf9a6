package pubchem

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/utils"
)

const propertyList = "Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
}

func NewPubChemRepo(baseURL string) repo.PubChemRepo {
	return &pubchemImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}
}

func (p *pubchemImpl) GetCompound(ctx context.Context, nameOrCAS string) (*repo.CompoundInfo, error) {
	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"name":  nameOrCAS,
			"props": propertyList,
		}).
		SetResult(propResp).
		Get("/rest/pug/compound/name/{name}/property/{props}/JSON")
	if err != nil {
		logger.Errorf(ctx, "request PubChem properties name: %s err: %v", nameOrCAS, err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, code.RecordNotFound.WithMsgf("PubChem has no compound %q", nameOrCAS)
	default:
		return nil, code.RPCHttpCodeErr.WithMsgf("PubChem property query failed: status %d", res.StatusCode())
	}

	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.UnDefineErr.WithMsg("empty PubChem property response")
	}

	prop := propResp.PropertyTable.Properties[0]
	return &repo.CompoundInfo{
		Name:             utils.Or(prop.Title, prop.IUPACName, nameOrCAS),
		MolecularFormula: prop.MolecularFormula,
		IUPACName:        prop.IUPACName,
		SMILES:           utils.Or(prop.IsomericSMILES, prop.CanonicalSMILES, prop.SMILES),
	}, nil
}
