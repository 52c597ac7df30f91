package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordErrors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErrs int
	}{
		{"valid", "Abcdef!1", 0},
		{"lowercase only", "abcdefgh", 1},
		{"no symbol", "Abcdefg1", 1},
		{"underscore is not a symbol", "Abcdefg_", 1},
		{"too short and weak", "abc", 2},
		{"short but complex", "Ab!", 1},
		{"empty", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, PasswordErrors(tt.password), tt.wantErrs)
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "alice", Clean("  alice  "))
	assert.Equal(t, "alice", Clean("<script>x</script>alice"))
	assert.Equal(t, "bob", Clean("<b>bob</b>"))
}
