// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

package main

import (
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/binairo-go/takuzu"
)

// boardToPDF renders b as a printable grid, one cell per table cell, and
// writes it to pdfFileName.
func boardToPDF(b *takuzu.Board, pdfFileName string) error {
	if pdfFileName == "" {
		return errors.New("no PDF file name")
	}

	size := b.Size()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 14)

	basicTable := func() error {
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				border := "" // empty, "1", "L", "T", "R" and "B"
				if i == 0 {
					border += "T"
				}
				if j == 0 {
					border += "L"
				}
				if i+1 == size {
					border += "B"
				}
				if j+1 == size {
					border += "R"
				}
				align := "CM" // horiz=Center vert=Middle

				v, err := b.Get(i, j)
				if err != nil {
					return err
				}
				text := "."
				if v != takuzu.Empty {
					text = v.String()
				}
				pdf.CellFormat(8, 8, text, border, 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		return nil
	}

	pdf.AddPage()
	if err := basicTable(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(pdfFileName)
}
