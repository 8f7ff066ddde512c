// Copyright (c) 2026, The Sous Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/recipe"
)

const (
	pdfExtension = ".pdf"
	pdfFont      = "Helvetica"
	pdfMargin    = 15.0
	pdfLineH     = 5.5
)

// PDFRenderer lays out the fixed recipe structure as an A4 PDF document.
// It honors the same section toggles and serving scale as the Markdown
// renderer. Front matter has no PDF equivalent; the title and author are
// always written to the document properties instead.
type PDFRenderer struct {
	compress bool
}

// NewPDFRenderer returns a PDF renderer with compressed content streams.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{compress: true}
}

func (p *PDFRenderer) Extension() string {
	return pdfExtension
}

// Render returns the PDF bytes as a string.
func (p *PDFRenderer) Render(r *recipe.Recipe, opts Options) (out string, err error) {
	defer func(start time.Time) { observeRender(ModePDF, start, err) }(time.Now())

	if r == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(p.compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(r.Name, true)
	pdf.SetAuthor(r.Author, true)
	pdf.SetCreator("sous", false)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if opts.EmitMetadata {
		pdf.SetFont(pdfFont, "B", 20)
		pdf.MultiCell(0, 9, tr(r.Name), "", "L", false)
		pdf.SetFont(pdfFont, "I", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, pdfLineH, tr(bylineOf(r)), "", "L", false)
		pdf.MultiCell(0, pdfLineH, tr(summaryLine(r, opts.DisplayServings(r))), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	if opts.EmitIngredients {
		pdfHeading(pdf, "Ingredients")
		multiplier := opts.Multiplier(r)
		pdf.SetFont(pdfFont, "", 11)
		for _, ing := range r.Ingredients {
			pdf.MultiCell(0, pdfLineH, tr("• "+ing.Scaled(multiplier).String()), "", "L", false)
		}
		pdf.Ln(4)
	}

	if opts.EmitSteps {
		pdfHeading(pdf, "Method")
		pdf.SetFont(pdfFont, "", 11)
		for i, step := range r.Steps {
			pdf.MultiCell(0, pdfLineH, tr(fmt.Sprintf("%d. %s", i+1, step)), "", "L", false)
			pdf.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to write PDF", err)
	}
	return buf.String(), nil
}

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(pdfFont, "B", 14)
	pdf.MultiCell(0, 8, text, "", "L", false)
	pdf.Ln(1)
}
