package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities_Sections(t *testing.T) {
	e := ExtractEntities("what is Section 154 about")
	assert.Equal(t, []string{"154"}, e.Sections)
	assert.False(t, e.IsEmpty())
}

func TestExtractEntities_IPCAndCRPC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantIPC  []string
		wantCRPC []string
	}{
		{"section first", "punishment under Section 420 IPC", []string{"420"}, nil},
		{"code first", "IPC Section 302 details", []string{"302"}, nil},
		{"bare citation", "498A IPC", []string{"498A"}, nil},
		{"of the form", "Section 125 of the CrPC", nil, []string{"125"}},
		{"lowercase", "section 138 ipc", []string{"138"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ExtractEntities(tt.input)
			assert.Equal(t, tt.wantIPC, e.IPCSections)
			assert.Equal(t, tt.wantCRPC, e.CRPCSections)
		})
	}
}

func TestExtractEntities_PureCitationQuery(t *testing.T) {
	// A citation-only query still produces a usable entity set.
	e := ExtractEntities("Section 498A IPC")
	assert.Equal(t, []string{"498A"}, e.IPCSections)
	assert.Contains(t, e.Sections, "498A")
}

func TestExtractEntities_Articles(t *testing.T) {
	e := ExtractEntities("is Article 21 violated here")
	assert.Equal(t, []string{"21"}, e.Articles)
}

func TestExtractEntities_Acts(t *testing.T) {
	e := ExtractEntities("rights under the Hindu Succession Act, 1956")
	assert.Len(t, e.Acts, 1)
	assert.Contains(t, e.Acts[0], "Hindu Succession Act")

	// Short capitalized fragments ending in Act are noise, not acts.
	e = ExtractEntities("The Act")
	assert.Empty(t, e.Acts)
}

func TestExtractEntities_CaseNames(t *testing.T) {
	tests := []string{
		"Kesavananda Bharati v. State",
		"Kesavananda Bharati vs State",
		"Kesavananda Bharati versus State",
	}
	for _, input := range tests {
		e := ExtractEntities(input)
		assert.Equal(t, []string{"Kesavananda Bharati v. State"}, e.Cases, "input %q", input)
	}
}

func TestExtractEntities_NothingToFind(t *testing.T) {
	e := ExtractEntities("how do i get my security deposit back")
	assert.True(t, e.IsEmpty())
}

func TestExtractEntities_Deduplicates(t *testing.T) {
	e := ExtractEntities("Section 154 and again Section 154")
	assert.Equal(t, []string{"154"}, e.Sections)
}
