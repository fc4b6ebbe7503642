package widgets_test

import (
	"testing"

	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/ui"
	"github.com/go-loom/loom/pkg/uitest"
	"github.com/go-loom/loom/pkg/widgets"
)

func TestColumnStacksChildren(t *testing.T) {
	tester := uitest.New(t)
	tester.Pump(func(cx *ui.Cx) {
		widgets.Column(5).Build(cx, func(cx *ui.Cx) {
			widgets.LabelOf("one").Build(cx)
			widgets.LabelOf("second line").Build(cx)
		})
	})

	labels := tester.FindByName("Label")
	if labels.Count() != 2 {
		t.Fatalf("labels = %d, want 2", labels.Count())
	}
	first, second := labels.At(0), labels.At(1)
	if first.Origin() != (graphics.Offset{}) {
		t.Errorf("first origin = %v, want zero", first.Origin())
	}
	if got, want := second.Origin().Y, first.Size().Height+5; got != want {
		t.Errorf("second origin Y = %v, want %v", got, want)
	}

	column := tester.FindByName("Column").First()
	if got, want := column.Size().Width, second.Size().Width; got != want {
		t.Errorf("column width = %v, want widest child %v", got, want)
	}
	wantHeight := first.Size().Height + 5 + second.Size().Height
	if column.Size().Height != wantHeight {
		t.Errorf("column height = %v, want %v", column.Size().Height, wantHeight)
	}
}

func TestRowPlacesChildren(t *testing.T) {
	tester := uitest.New(t)
	tester.Pump(func(cx *ui.Cx) {
		widgets.Row(3).Build(cx, func(cx *ui.Cx) {
			widgets.LabelOf("ab").Build(cx)
			widgets.LabelOf("cd").Build(cx)
		})
	})

	labels := tester.FindByName("Label")
	first, second := labels.At(0), labels.At(1)
	if got, want := second.Origin().X, first.Size().Width+3; got != want {
		t.Errorf("second origin X = %v, want %v", got, want)
	}
	row := tester.FindByName("Row").First()
	wantWidth := first.Size().Width + 3 + second.Size().Width
	if row.Size().Width != wantWidth {
		t.Errorf("row width = %v, want %v", row.Size().Width, wantWidth)
	}
}

func TestPaddingInsetsChild(t *testing.T) {
	tester := uitest.New(t)
	tester.Pump(func(cx *ui.Cx) {
		widgets.PaddingOf(7).Build(cx, func(cx *ui.Cx) {
			widgets.LabelOf("hi").Build(cx)
		})
	})

	label := tester.FindByName("Label").First()
	if label.Origin() != (graphics.Offset{X: 7, Y: 7}) {
		t.Errorf("label origin = %v, want (7,7)", label.Origin())
	}
	pad := tester.FindByName("Padding").First()
	want := graphics.Size{
		Width:  label.Size().Width + 14,
		Height: label.Size().Height + 14,
	}
	if pad.Size() != want {
		t.Errorf("padding size = %v, want %v", pad.Size(), want)
	}
}

func TestLabelRewrapsOnNarrowSurface(t *testing.T) {
	tester := uitest.New(t)
	build := func(cx *ui.Cx) {
		widgets.LabelOf("aaa bbb ccc ddd eee").Build(cx)
	}
	tester.Pump(build)
	wide := tester.FindByName("Label").First().Size()

	tester.SetSize(graphics.Size{Width: 40, Height: 600})
	tester.Pump(build)
	narrow := tester.FindByName("Label").First().Size()

	if narrow.Width > 40 {
		t.Errorf("narrow width = %v, exceeds the constraint", narrow.Width)
	}
	if narrow.Height <= wide.Height {
		t.Errorf("narrow height = %v, want taller than %v after wrapping", narrow.Height, wide.Height)
	}
}
