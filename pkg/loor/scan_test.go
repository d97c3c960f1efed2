package loor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundingOptions_PhxValueAttributes(t *testing.T) {
	html := `
<div class="modal">
  <button phx-click="select_amount" phx-value-amount="100">100 LOOT</button>
  <button phx-click="select_amount" phx-value-amount="400">400 LOOT</button>
  <button phx-click="select_amount" phx-value-amount="800">800 LOOT</button>
</div>`

	assert.Equal(t, []int{100, 400, 800}, fundingOptions(html))
}

func TestFundingOptions_TextFallback(t *testing.T) {
	html := `
<div class="modal">
  <label>100 LOOT</label>
  <label>400 LOOT</label>
</div>`

	assert.Equal(t, []int{100, 400}, fundingOptions(html))
}

func TestFundingOptions_FreeEntryModal(t *testing.T) {
	html := `
<div class="modal">
  <input type="number" name="amount"/>
  <button type="submit">Fund</button>
</div>`

	assert.Empty(t, fundingOptions(html))
}

func TestFundingOptions_DeduplicatesAcrossSources(t *testing.T) {
	html := `<button phx-value-amount="400">400 LOOT</button>`

	assert.Equal(t, []int{400}, fundingOptions(html))
}

func TestAlreadyClaimed(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{
			name: "already claimed banner",
			html: `<div class="quest">Already claimed today!</div>`,
			want: true,
		},
		{
			name: "come back tomorrow",
			html: `<p>Come back tomorrow for more LOOT.</p>`,
			want: true,
		},
		{
			name: "claim still available",
			html: `<form><button type="submit">Claim 50 LOOT</button></form>`,
			want: false,
		},
		{
			name: "empty page",
			html: ``,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alreadyClaimed(tt.html))
		})
	}
}

func TestHasClaimForm(t *testing.T) {
	assert.True(t, hasClaimForm(`<form><button type="submit">Claim</button></form>`))
	assert.True(t, hasClaimForm(`<form><input type="submit" value="Claim"/></form>`))
	assert.False(t, hasClaimForm(`<form><p>nothing to submit</p></form>`))
	assert.False(t, hasClaimForm(`<div>no form at all</div>`))
}
