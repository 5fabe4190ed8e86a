package transform

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Catalog returns the full list of filters in their canonical order.
func Catalog() []Transform {
	return []Transform{
		{Name: "oceanic", Apply: tint(color.NRGBA{R: 0, G: 89, B: 173}, 0.2)},
		{Name: "islands", Apply: tint(color.NRGBA{R: 0, G: 24, B: 95}, 0.2)},
		{Name: "marine", Apply: tint(color.NRGBA{R: 0, G: 14, B: 119}, 0.2)},
		{Name: "seagreen", Apply: tint(color.NRGBA{R: 0, G: 68, B: 62}, 0.2)},
		{Name: "flagblue", Apply: tint(color.NRGBA{R: 0, G: 0, B: 131}, 0.2)},
		{Name: "liquid", Apply: chain(
			tint(color.NRGBA{R: 0, G: 10, B: 75}, 0.2),
			contrast(10),
		)},
		{Name: "diamante", Apply: chain(
			tint(color.NRGBA{R: 30, G: 82, B: 87}, 0.1),
			saturation(20),
		)},
		{Name: "radio", Apply: chain(
			tint(color.NRGBA{R: 200, G: 0, B: 90}, 0.15),
			contrast(25),
		)},
		{Name: "twenties", Apply: chain(
			saturation(-60),
			tint(color.NRGBA{R: 116, G: 43, B: 23}, 0.3),
		)},
		{Name: "rosetint", Apply: tint(color.NRGBA{R: 255, G: 105, B: 180}, 0.15)},
		{Name: "mauve", Apply: tint(color.NRGBA{R: 90, G: 40, B: 90}, 0.2)},
		{Name: "bluechrome", Apply: chain(
			tint(color.NRGBA{R: 100, G: 160, B: 255}, 0.2),
			saturation(30),
		)},
		{Name: "vintage", Apply: chain(
			saturation(-30),
			tint(color.NRGBA{R: 160, G: 120, B: 40}, 0.25),
			gamma(0.9),
		)},
		{Name: "perfume", Apply: tint(color.NRGBA{R: 80, G: 40, B: 120}, 0.2)},
		{Name: "serenity", Apply: chain(
			tint(color.NRGBA{R: 10, G: 40, B: 90}, 0.2),
			brightness(5),
		)},
	}
}

// tint blends every pixel toward c by opacity, leaving alpha untouched.
func tint(c color.NRGBA, opacity float64) Func {
	mix := func(src, dst uint8) uint8 {
		return uint8(float64(src)*(1-opacity) + float64(dst)*opacity + 0.5)
	}
	return func(img image.Image) *image.NRGBA {
		return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
			return color.NRGBA{
				R: mix(px.R, c.R),
				G: mix(px.G, c.G),
				B: mix(px.B, c.B),
				A: px.A,
			}
		})
	}
}

func saturation(percentage float64) Func {
	return func(img image.Image) *image.NRGBA {
		return imaging.AdjustSaturation(img, percentage)
	}
}

func contrast(percentage float64) Func {
	return func(img image.Image) *image.NRGBA {
		return imaging.AdjustContrast(img, percentage)
	}
}

func brightness(percentage float64) Func {
	return func(img image.Image) *image.NRGBA {
		return imaging.AdjustBrightness(img, percentage)
	}
}

func gamma(g float64) Func {
	return func(img image.Image) *image.NRGBA {
		return imaging.AdjustGamma(img, g)
	}
}

func chain(steps ...Func) Func {
	return func(img image.Image) *image.NRGBA {
		out := imaging.Clone(img)
		for _, step := range steps {
			out = step(out)
		}
		return out
	}
}
