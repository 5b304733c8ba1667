package geom

var (
	widthProps = []string{
		"margin-left",
		"padding-left",
		"width",
		"padding-right",
		"margin-right",
	}
	heightProps = []string{
		"margin-top",
		"padding-top",
		"height",
		"padding-bottom",
		"margin-bottom",
	}
	innerWidthProps  = []string{"padding-left", "width", "padding-right"}
	innerHeightProps = []string{"padding-top", "height", "padding-bottom"}
)

// StyleProps lists every computed style property read by this package.
func StyleProps() []string {
	out := make([]string, 0, len(widthProps)+len(heightProps))
	out = append(out, widthProps...)
	return append(out, heightProps...)
}

// ElementPosition returns the element offset with its own left/top margin removed.
func ElementPosition(el Element) Offset {
	return Offset{
		Left: el.OffsetLeft() - ParseCSSFloat(el.ComputedStyle("margin-left")),
		Top:  el.OffsetTop() - ParseCSSFloat(el.ComputedStyle("margin-top")),
	}
}

// ElementSize returns the element footprint including margin and padding.
// An unparsable property turns its whole axis into NaN.
func ElementSize(el Element) Size {
	return Size{
		Width:  sumStyle(el, widthProps),
		Height: sumStyle(el, heightProps),
	}
}

// InnerSize returns the padding box of the element, the area that
// offsetLeft/offsetTop of its children are measured in.
func InnerSize(el Element) Size {
	return Size{
		Width:  sumStyle(el, innerWidthProps),
		Height: sumStyle(el, innerHeightProps),
	}
}

// sumStyle adds the parsed values of props in order.
func sumStyle(el Element, props []string) float64 {
	total := 0.0
	for _, prop := range props {
		total += ParseCSSFloat(el.ComputedStyle(prop))
	}
	return total
}
