package chart

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
)

const margin = 40

// plotSeries — серия, сведённая к числам.
type plotSeries struct {
	name   string
	color  color.RGBA
	hex    string
	values []float64
}

// plot — подготовленный к отрисовке график: размеры, масштаб и серии.
type plot struct {
	title    string
	kind     domain.ChartType
	dark     bool
	width    int
	height   int
	min, max float64
	maxLen   int
	series   []plotSeries
}

func newPlot(cfg domain.ChartOptions, width, height int) *plot {
	p := &plot{
		title:  cfg.Config.Title,
		kind:   cfg.Config.Type,
		dark:   cfg.Config.Theme == "dark",
		width:  width,
		height: height,
		min:    math.Inf(1),
		max:    math.Inf(-1),
	}
	for i, s := range cfg.Series {
		hex := s.Color
		c, ok := parseHex(hex)
		if !ok {
			hex = domain.ChartColors[i%len(domain.ChartColors)]
			c, _ = parseHex(hex)
		}
		values := seriesValues(s.Data)
		for _, v := range values {
			p.min = math.Min(p.min, v)
			p.max = math.Max(p.max, v)
		}
		if len(values) > p.maxLen {
			p.maxLen = len(values)
		}
		p.series = append(p.series, plotSeries{name: s.Name, color: c, hex: hex, values: values})
	}
	if p.maxLen == 0 {
		p.min, p.max = 0, 1
	}
	if p.bars() && p.min > 0 {
		p.min = 0
	}
	if p.min == p.max {
		p.min, p.max = p.min-1, p.max+1
	}
	return p
}

// seriesValues достаёт числа из данных серии: [1,2], [{"date":..,"value":..}], [{"x":..,"y":..}], [[x,y]].
func seriesValues(data []byte) []float64 {
	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		return nil
	}
	var out []float64
	arr.ForEach(func(_, item gjson.Result) bool {
		var r gjson.Result
		switch {
		case item.IsObject():
			r = item.Get("value")
			if !r.Exists() {
				r = item.Get("y")
			}
		case item.IsArray():
			r = item.Get("1")
		default:
			r = item
		}
		if v, ok := domain.ParseNumericValue(r.String()); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

func (p *plot) bars() bool {
	return p.kind == domain.ChartBar || p.kind == domain.ChartHistogram
}

// x — координата i-й точки по горизонтали.
func (p *plot) x(i int) float64 {
	span := float64(p.width - 2*margin)
	if p.bars() {
		step := span / float64(max(p.maxLen, 1))
		return margin + step*(float64(i)+0.5)
	}
	if p.maxLen <= 1 {
		return margin + span/2
	}
	return margin + span*float64(i)/float64(p.maxLen-1)
}

// y — координата значения v по вертикали (ось направлена вниз).
// Разности считаются от половин, чтобы max-min не переполнялся на краях float64.
func (p *plot) y(v float64) float64 {
	den := p.max/2 - p.min/2
	if den == 0 {
		return float64(p.height) / 2
	}
	span := float64(p.height - 2*margin)
	return float64(p.height-margin) - span*(v/2-p.min/2)/den
}

func (p *plot) barWidth() float64 {
	step := float64(p.width-2*margin) / float64(max(p.maxLen, 1))
	return math.Max(1, step*0.8/float64(max(len(p.series), 1)))
}

func (p *plot) palette() (bg, fg color.RGBA) {
	if p.dark {
		return color.RGBA{0x1e, 0x1e, 0x1e, 0xff}, color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0x33, 0x33, 0x33, 0xff}
}

func (p *plot) svg() []byte {
	bg, fg := p.palette()
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, p.width, p.height, p.width, p.height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, hexOf(bg))
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="16" fill="%s">%s</text>`,
		p.width/2, margin/2+6, hexOf(fg), html.EscapeString(p.title))
	fmt.Fprintf(&b, `<g stroke="%s" stroke-width="1"><line x1="%d" y1="%d" x2="%d" y2="%d"/><line x1="%d" y1="%d" x2="%d" y2="%d"/></g>`,
		hexOf(fg), margin, margin, margin, p.height-margin, margin, p.height-margin, p.width-margin, p.height-margin)
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="10" fill="%s">%s</text>`,
		margin-4, margin+4, hexOf(fg), formatValue(p.max))
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-family="sans-serif" font-size="10" fill="%s">%s</text>`,
		margin-4, p.height-margin, hexOf(fg), formatValue(p.min))

	bw := p.barWidth()
	for si, s := range p.series {
		fmt.Fprintf(&b, `<g data-series="%s">`, html.EscapeString(s.name))
		if p.bars() {
			base := p.y(math.Max(p.min, 0))
			for i, v := range s.values {
				left := p.x(i) - bw*float64(len(p.series))/2 + bw*float64(si)
				top := math.Min(p.y(v), base)
				fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
					left, top, bw, math.Abs(base-p.y(v)), s.hex)
			}
		} else {
			pts := make([]string, len(s.values))
			for i, v := range s.values {
				pts[i] = fmt.Sprintf("%.1f,%.1f", p.x(i), p.y(v))
			}
			fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`, s.hex, strings.Join(pts, " "))
		}
		b.WriteString(`</g>`)
	}
	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func (p *plot) raster() image.Image {
	bg, fg := p.palette()
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	line(img, margin, margin, margin, p.height-margin, fg)
	line(img, margin, p.height-margin, p.width-margin, p.height-margin, fg)

	bw := p.barWidth()
	for si, s := range p.series {
		if p.bars() {
			base := p.y(math.Max(p.min, 0))
			for i, v := range s.values {
				left := p.x(i) - bw*float64(len(p.series))/2 + bw*float64(si)
				top, bottom := math.Min(p.y(v), base), math.Max(p.y(v), base)
				r := image.Rect(clampPx(left, p.width), clampPx(top, p.height), clampPx(left+bw, p.width), clampPx(bottom, p.height)+1)
				draw.Draw(img, r, &image.Uniform{C: s.color}, image.Point{}, draw.Src)
			}
			continue
		}
		for i := 1; i < len(s.values); i++ {
			x0, y0 := clampPx(p.x(i-1), p.width), clampPx(p.y(s.values[i-1]), p.height)
			x1, y1 := clampPx(p.x(i), p.width), clampPx(p.y(s.values[i]), p.height)
			line(img, x0, y0, x1, y1, s.color)
			line(img, x0, y0+1, x1, y1+1, s.color)
		}
		if len(s.values) == 1 {
			cx, cy := clampPx(p.x(0), p.width), clampPx(p.y(s.values[0]), p.height)
			draw.Draw(img, image.Rect(cx-2, cy-2, cx+3, cy+3), &image.Uniform{C: s.color}, image.Point{}, draw.Src)
		}
	}
	return img
}

// line рисует отрезок алгоритмом Брезенхэма.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clampPx переводит координату в пиксель в пределах [-1, size]. NaN — 0.
func clampPx(v float64, size int) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(-1, math.Min(v, float64(size))))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
