package buffer

import (
	"html/template"
	"sync"
	"testing"

	"recipe-finder-app/core/interfaces"

	"github.com/stretchr/testify/assert"
)

var _ interfaces.ResultsArea = (*Area)(nil)

func TestArea_StartsEmpty(t *testing.T) {
	assert.Equal(t, template.HTML(""), NewArea().Content())
}

func TestArea_AppendPreservesOrder(t *testing.T) {
	area := NewArea()

	area.Append("<p>1</p>")
	area.Append("<p>2</p>")
	area.Append("<p>3</p>")

	assert.Equal(t, template.HTML("<p>1</p><p>2</p><p>3</p>"), area.Content())
}

func TestArea_ReplaceDiscardsPrevious(t *testing.T) {
	area := NewArea()
	area.Append("<p>old</p>")

	area.Replace("<p>new</p>")

	assert.Equal(t, template.HTML("<p>new</p>"), area.Content())
}

func TestArea_Clear(t *testing.T) {
	area := NewArea()
	area.Append("<p>old</p>")

	area.Clear()

	assert.Empty(t, area.Content())
}

func TestArea_ConcurrentWrites(t *testing.T) {
	area := NewArea()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			area.Append("x")
			_ = area.Content()
		}()
	}
	wg.Wait()

	assert.Len(t, string(area.Content()), 50)
}
