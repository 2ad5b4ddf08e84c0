// file: verifiers/verifier_test.go
package verifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/models"
)

func TestNew(t *testing.T) {
	for _, labType := range []models.LabType{
		models.LabTypeStaticFlag,
		models.LabTypeCaesar,
		models.LabTypeSQLInjection,
		models.LabTypeCSRF,
		models.LabTypeXORRepeatingKey,
	} {
		v, err := New(labType, Secret{Flag: "flag{x}"})
		require.NoError(t, err, "lab type %s", labType)
		assert.NotNil(t, v)
	}

	_, err := New(models.LabType("buffer_overflow"), Secret{})
	assert.Error(t, err)
}
