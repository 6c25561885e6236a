package services

import (
	"errors"
	"testing"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.Draft
		wantMsg string
	}{
		{"both filled", models.Draft{FundID: "1", FundName: "Alpha"}, ""},
		{"empty fundId", models.Draft{FundName: "Alpha"}, "Please fill out the fundId field."},
		{"whitespace fundId", models.Draft{FundID: "  \t", FundName: "Alpha"}, "Please fill out the fundId field."},
		{"empty fundName", models.Draft{FundID: "1"}, "Please fill out the fundName field."},
		{"whitespace fundName", models.Draft{FundID: "1", FundName: "   "}, "Please fill out the fundName field."},
		{"both blank reports fundId first", models.Draft{FundID: " ", FundName: " "}, "Please fill out the fundId field."},
		{"other fields are not checked", models.Draft{FundID: "x", FundName: "y", AUM: "-5", Category: "Crypto"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}
