package zerr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	chain := Wrap(NewCode(7, "inner"), "outer")

	t.Run("s and v match String", func(t *testing.T) {
		assert.Equal(t, "outer:7:inner", fmt.Sprintf("%s", chain))
		assert.Equal(t, "outer:7:inner", fmt.Sprintf("%v", chain))
	})

	t.Run("q quotes the rendering", func(t *testing.T) {
		assert.Equal(t, `"outer:7:inner"`, fmt.Sprintf("%q", chain))
	})

	t.Run("plus v lists one node per line", func(t *testing.T) {
		want := "#0 code=0 msg=\"outer\"\n#1 code=7 msg=\"inner\""
		assert.Equal(t, want, fmt.Sprintf("%+v", chain))
	})

	t.Run("variants format through Base", func(t *testing.T) {
		assert.Equal(t, "2001:quota exhausted", fmt.Sprintf("%s", errQuota))
		assert.Equal(t, "#0 code=2001 msg=\"quota exhausted\"", fmt.Sprintf("%+v", errQuota))
	})

	t.Run("adopted nodes format", func(t *testing.T) {
		a := From(fmt.Errorf("no route to %s", "10.0.0.8"))
		assert.Equal(t, "no route to 10.0.0.8", fmt.Sprintf("%v", a))
		assert.Equal(t, "#0 code=0 msg=\"no route to 10.0.0.8\"", fmt.Sprintf("%+v", a))
	})
}
