package pubchem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPubChemServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/pug/compound/name/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/rest/pug/compound/name/"), "/")
		if len(parts) != 4 || parts[1] != "property" || parts[2] != propertyList || parts[3] != "JSON" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch parts[0] {
		case "water":
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":962,"MolecularFormula":"H2O","IUPACName":"oxidane","CanonicalSMILES":"O","Title":"Water"}]}}`))
		case "empty":
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[]}}`))
		case "broken":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetCompound(t *testing.T) {
	srv := newPubChemServer(t)
	r := NewPubChemRepo(srv.URL)

	info, err := r.GetCompound(context.Background(), "water")
	require.NoError(t, err)
	assert.Equal(t, "Water", info.Name)
	assert.Equal(t, "H2O", info.MolecularFormula)
	assert.Equal(t, "oxidane", info.IUPACName)
	assert.Equal(t, "O", info.SMILES)
}

func TestGetCompoundErrors(t *testing.T) {
	srv := newPubChemServer(t)
	r := NewPubChemRepo(srv.URL)
	ctx := context.Background()

	_, err := r.GetCompound(ctx, "unknown")
	assert.ErrorIs(t, err, code.RecordNotFound)

	_, err = r.GetCompound(ctx, "empty")
	assert.ErrorIs(t, err, code.UnDefineErr)

	_, err = r.GetCompound(ctx, "broken")
	assert.ErrorIs(t, err, code.RPCHttpCodeErr)
}
