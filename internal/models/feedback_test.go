package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedback_MaskedPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
		has   bool
	}{
		{name: "mobile", phone: "11987654321", want: "(11) 98765-4321", has: true},
		{name: "landline", phone: "1133334444", want: "(11) 3333-4444", has: true},
		{name: "no phone", phone: "", want: "", has: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Feedback{Phone: tt.phone}
			assert.Equal(t, tt.want, f.MaskedPhone())
			assert.Equal(t, tt.has, f.HasPhone())
		})
	}
}
