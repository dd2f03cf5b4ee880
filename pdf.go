package main

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// pdfLabelMinSize 是能容纳标签文字的最小字号(pt)
const pdfLabelMinSize = 4.0

// writeCloudPDF 把布局写成单页 PDF，页面大小与画布一致，单位为 pt
func writeCloudPDF(data *CloudData, opts *Options, path string) error {
	defer track(&debugInfo.RenderTime)()

	colors, err := newPalette(opts)
	if err != nil {
		return err
	}
	canvas := placeCloudInImage(data.Bounds, opts.Margin, opts.MinCanvas)
	side := float64(canvas.Size.Width)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: side, Ht: side},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(fmt.Sprintf("tag cloud %s", data.Meta.Session), true)
	pdf.AddPage()

	pdf.SetFillColor(int(colors.background.R), int(colors.background.G), int(colors.background.B))
	pdf.Rect(0, 0, side, side, "F")

	pdf.SetDrawColor(int(colors.border.R), int(colors.border.G), int(colors.border.B))
	pdf.SetTextColor(int(colors.text.R), int(colors.text.G), int(colors.text.B))
	pdf.SetLineWidth(0.5)
	for _, t := range data.Tags {
		r := t.Region.Translate(canvas.Offset.X, canvas.Offset.Y)
		x, y := float64(r.X), float64(r.Y)
		w, h := float64(r.Width), float64(r.Height)

		fill := colors.fill(t.Ring)
		pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		pdf.Rect(x, y, w, h, "FD")

		if t.Text == "" {
			continue
		}
		size := labelFontSize(pdf, t.Text, w-2*float64(opts.Padding), h-2*float64(opts.Padding))
		if size < pdfLabelMinSize {
			continue
		}
		pdf.SetFont("Helvetica", "", size)
		pdf.SetXY(x, y)
		pdf.CellFormat(w, h, t.Text, "", 0, "CM", false, 0, "")
	}
	return pdf.OutputFileAndClose(path)
}

// labelFontSize 返回能让 text 放进 w×h 的最大 Helvetica 字号
func labelFontSize(pdf *fpdf.Fpdf, text string, w, h float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	width := pdf.GetStringWidth(text)
	if width <= 0 {
		return 0
	}
	return math.Min(10*w/width, h*0.8)
}
