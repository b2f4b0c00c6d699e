package headless_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/comalice/headless"
	"github.com/comalice/headless/testutil"
)

func TestDialogOpenClose(t *testing.T) {
	d, err := NewDialog(WithID("confirm"))
	require.NoError(t, err)
	rec := testutil.Record(d, d.IsOpen)
	var changes []bool
	d.OnOpenChange = func(open bool) { changes = append(changes, open) }

	d.Close()
	require.Equal(t, 0, rec.Count, "closing a closed dialog is silent")

	d.Open()
	d.Open()
	d.Close()
	d.Close()
	require.Equal(t, []bool{true, false}, rec.Seen)
	require.Equal(t, []bool{true, false}, changes)
}

func TestDialogIDsAndModal(t *testing.T) {
	d, err := NewDialog(WithID("confirm"))
	require.NoError(t, err)
	require.Equal(t, "confirm-content", d.ContentID())
	require.Equal(t, "confirm-title", d.TitleID())
	require.Equal(t, "confirm-description", d.DescriptionID())

	require.False(t, d.SetModal(true))
	require.True(t, d.SetModal(false))
	require.False(t, d.State().Modal)
}

func TestDialogEscapeCloses(t *testing.T) {
	d, err := NewDialog()
	require.NoError(t, err)
	require.False(t, d.HandleKey(KeyEscape))

	d.OpenFrom(NewTriggerRef("delete-btn"))
	require.False(t, d.HandleKey(KeyEnter))
	require.True(t, d.HandleKey(KeyEscape))
	require.False(t, d.IsOpen())
	require.Equal(t, "delete-btn", d.Trigger().ID())
}

func TestSheet(t *testing.T) {
	_, err := NewSheet("middle")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "side", argErr.Param)

	s, err := NewSheet(SideLeft)
	require.NoError(t, err)
	require.Equal(t, SideLeft, s.Side())
	require.Equal(t, "sheet", s.Kind())
	require.Equal(t, "sheet", s.Chart().Widget)

	s.Toggle()
	require.True(t, s.IsOpen())
	s.Toggle()
	require.False(t, s.IsOpen())
}

func TestPopoverPlacement(t *testing.T) {
	p, err := NewPopover(WithID("filters"))
	require.NoError(t, err)
	require.Equal(t, SideBottom, p.State().Side)
	require.Equal(t, AlignCenter, p.State().Align)

	rec := testutil.Count(p)
	require.False(t, p.SetPlacement("diagonal", AlignStart))
	require.False(t, p.SetPlacement(SideBottom, AlignCenter))
	require.True(t, p.SetPlacement(SideTop, AlignEnd))
	require.Equal(t, 1, rec.Count)
	require.Equal(t, "filters-content", p.ContentID())
}

func TestPopoverControlledOpen(t *testing.T) {
	p, err := NewPopover()
	require.NoError(t, err)
	rec := testutil.Count(p)

	p.SetOpen(true)
	p.SetOpen(true)
	require.True(t, p.IsOpen())
	require.Equal(t, ModeOpen, p.Mode())
	p.SetOpen(false)
	require.Equal(t, 2, rec.Count)
}

func TestTriggerRef(t *testing.T) {
	var zero TriggerRef
	require.True(t, zero.IsZero())

	a := NewTriggerRef("btn")
	require.False(t, a.IsZero())
	require.True(t, a.Equal(NewTriggerRef("btn")))
	require.False(t, a.Equal(NewTriggerRef("other")))
	require.Equal(t, "btn", a.ID())
}

func TestKeyNames(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyEnter, KeySpace, KeyEscape, KeyTab} {
		require.Equal(t, k, ParseKey(k.String()))
	}
	require.Equal(t, KeyUnknown, ParseKey("f13"))
	require.Equal(t, "unknown", Key(99).String())
}
