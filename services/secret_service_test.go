// file: services/secret_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/dto"
	"CTFLab/models"
	"CTFLab/verifiers"
)

func TestVerifierForLabResolvesRegisteredSecrets(t *testing.T) {
	chal := models.Challenge{Flag: "flag{static}"}

	for _, tc := range []struct {
		slug    string
		labType models.LabType
	}{
		{"caesar-cipher", models.LabTypeCaesar},
		{"sql-injection-101", models.LabTypeSQLInjection},
		{"csrf-attack", models.LabTypeCSRF},
		{"xor-repeating-key", models.LabTypeXORRepeatingKey},
	} {
		lab := models.Lab{Slug: tc.slug, LabType: tc.labType}
		v, err := VerifierForLab(lab, chal)
		require.NoError(t, err, "slug %s", tc.slug)
		assert.NotNil(t, v)
	}
}

func TestVerifierForLabStaticFlagUsesChallengeRow(t *testing.T) {
	lab := models.Lab{Slug: "any-static-lab", LabType: models.LabTypeStaticFlag}
	chal := models.Challenge{Flag: "flag{from_challenge_row}"}

	v, err := VerifierForLab(lab, chal)
	require.NoError(t, err)

	verdict, err := v.Verify(dto.VerifyReq{Answer: "flag{from_challenge_row}"})
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
}

func TestVerifierForLabUnknownSlugFails(t *testing.T) {
	lab := models.Lab{Slug: "not-registered", LabType: models.LabTypeCaesar}
	_, err := VerifierForLab(lab, models.Challenge{})
	assert.Error(t, err)
}

func TestLabFlag(t *testing.T) {
	flag, err := LabFlag(
		models.Lab{Slug: "caesar-cipher", LabType: models.LabTypeCaesar},
		models.Challenge{},
	)
	require.NoError(t, err)
	assert.Equal(t, "flag{caesar_shift3}", flag)

	flag, err = LabFlag(
		models.Lab{Slug: "whatever", LabType: models.LabTypeStaticFlag},
		models.Challenge{Flag: "flag{row}"},
	)
	require.NoError(t, err)
	assert.Equal(t, "flag{row}", flag)
}

func TestRegisterLabSecretOverrides(t *testing.T) {
	RegisterLabSecret("test-temp-lab", verifiers.Secret{
		Plaintext: "attack at dawn",
		Flag:      "flag{temp}",
	})
	defer delete(labSecrets, "test-temp-lab")

	lab := models.Lab{Slug: "test-temp-lab", LabType: models.LabTypeCaesar}
	v, err := VerifierForLab(lab, models.Challenge{})
	require.NoError(t, err)

	verdict, err := v.Verify(dto.VerifyReq{Answer: "Attack At Dawn"})
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
	assert.Equal(t, "flag{temp}", verdict.Flag)
}
