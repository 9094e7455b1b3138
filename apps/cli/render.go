package main

import (
	"io"
	"strings"

	"github.com/acm19/clippics/internal/clips"
	"github.com/acm19/clippics/internal/output"
	"github.com/acm19/clippics/internal/store"
)

const (
	listTimeLayout = "01-02 15:04"
	gridTimeLayout = "01-02 15:04:05"
	gridColumns    = 3
)

// renderImages writes images as a list table or a grid.
func renderImages(w io.Writer, images []clips.ImageInfo, view store.ViewMode) error {
	if view == store.ViewGrid {
		return renderGrid(w, images)
	}
	return renderList(w, images)
}

func renderList(w io.Writer, images []clips.ImageInfo) error {
	table := output.NewTable(w, []string{"Time", "Size", "Name"})
	for _, image := range images {
		table.AddRow(image.Time.Format(listTimeLayout), clips.FormatBytes(image.Size), image.Name)
	}
	return table.Render()
}

func renderGrid(w io.Writer, images []clips.ImageInfo) error {
	table := output.NewTable(w, nil)
	for start := 0; start < len(images); start += gridColumns {
		end := min(start+gridColumns, len(images))
		row := make([]string, gridColumns)
		for i, image := range images[start:end] {
			row[i] = gridCell(image)
		}
		table.AddRow(row...)
	}
	return table.Render()
}

func gridCell(image clips.ImageInfo) string {
	return image.Time.Format(gridTimeLayout) + "  (" + clips.FormatBytes(image.Size) + ")"
}

// formatListRow renders one image on a single line.
func formatListRow(image clips.ImageInfo) string {
	return strings.Join([]string{image.Time.Format(listTimeLayout), clips.FormatBytes(image.Size), image.Path}, "  ")
}

func printInfo(p *output.Printer, info clips.ImageInfo) {
	p.Field("Name", info.Name)
	p.Field("Path", info.Path)
	p.Field("Modified", info.Time.Format(gridTimeLayout))
	p.Field("Size", clips.FormatBytes(info.Size))
}

// printDetail prints the metadata section only when metadata was read.
func printDetail(p *output.Printer, detail *clips.Detail) {
	if detail.Metadata != nil {
		p.Field("Dimensions", detail.Metadata.Dimensions())
		p.Field("Image Type", detail.Metadata.FileType())
		if compression := detail.Metadata.Compression(); compression != "" {
			p.Field("Compression", compression)
		}
	}
	if label := detail.CompressedLabel(); label != "" {
		p.Field("Compressed Size", label)
		p.Field("Compressed Path", detail.Compressed.Path)
	}
	p.Separator()
	p.Field("Size", clips.FormatBytes(detail.Image.Size))
	p.Field("Path", detail.Image.Path)
	p.Field("Open in Finder", "file://"+strings.TrimSuffix(detail.Image.Path, detail.Image.Name))
}
