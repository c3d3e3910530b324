package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "pending", input: "pending", want: StatusPending},
		{name: "uppercase approved", input: "APPROVED", want: StatusApproved},
		{name: "mixed case with spaces", input: "  Not Approved ", want: StatusNotApproved},
		{name: "cancelled rejected", input: "cancelled", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "partial match rejected", input: "approve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointment_HasCapster(t *testing.T) {
	id := int64(7)
	assert.True(t, (&Appointment{CapsterID: &id}).HasCapster())
	assert.False(t, (&Appointment{}).HasCapster())
}

func TestAppointment_IsApproved(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusApproved}).IsApproved())
	assert.False(t, (&Appointment{Status: StatusPending}).IsApproved())
	assert.False(t, (&Appointment{Status: StatusNotApproved}).IsApproved())
}

func TestCapster_DisplayName(t *testing.T) {
	assert.Equal(t, "Ucok", (&Capster{Name: "Ucok", Alias: "U"}).DisplayName())
	assert.Equal(t, "U", (&Capster{Alias: "U"}).DisplayName())
	assert.Equal(t, UnknownCapsterName, (&Capster{}).DisplayName())
}
