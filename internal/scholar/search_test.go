package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `
<html><body>
<div class="gs_r gs_or gs_scl">
  <h3 class="gs_rt"><a href="https://example.org/paper1">Attention Mechanisms in Vision</a></h3>
  <div class="gs_a">J Smith, K Lee - Conference on Vision, 2021 - publisher.example</div>
  <div class="gs_rs">We study attention mechanisms for image recognition tasks...</div>
  <div class="gs_fl"><a href="#">Save</a><a href="#">Cited by 128</a></div>
</div>
<div class="gs_r gs_or gs_scl">
  <h3 class="gs_rt"><a href="https://example.org/paper2">Graph Neural Networks</a></h3>
  <div class="gs_a">M Chen - Journal of Graphs, 2019</div>
  <div class="gs_rs">A survey of graph neural networks.</div>
  <div class="gs_fl"><a href="#">Save</a></div>
</div>
</body></html>`

func TestParseSearchResults_Fixture(t *testing.T) {
	results, err := ParseSearchResults(searchFixture)
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "Attention Mechanisms in Vision", first.Title)
	assert.Equal(t, []string{"J Smith", "K Lee"}, first.Authors)
	assert.Equal(t, "Conference on Vision, 2021", first.Venue)
	assert.Equal(t, 2021, first.Year)
	assert.Equal(t, 128, first.Citations)
	assert.Equal(t, "https://example.org/paper1", first.URL)
	assert.Contains(t, first.Abstract, "attention mechanisms")

	second := results[1]
	assert.Equal(t, "Graph Neural Networks", second.Title)
	assert.Equal(t, []string{"M Chen"}, second.Authors)
	assert.Equal(t, 2019, second.Year)
	assert.Equal(t, 0, second.Citations, "no Cited by link means zero citations")
}

func TestParseSearchResults_Empty(t *testing.T) {
	results, err := ParseSearchResults("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSplitByline(t *testing.T) {
	authors, venue := splitByline("A One, B Two - Some Venue, 2020 - publisher")
	assert.Equal(t, []string{"A One", "B Two"}, authors)
	assert.Equal(t, "Some Venue, 2020", venue)

	authors, venue = splitByline("")
	assert.Empty(t, authors)
	assert.Equal(t, "", venue)
}
