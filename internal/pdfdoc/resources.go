// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// fontReader resolves page resources from a second, read-only view of the
// document. pdfcpu supplies the content streams; fontReader supplies the
// font encodings and form XObjects those streams name.
type fontReader struct {
	r *pdf.Reader
}

func openFontReader(f *os.File) (fr *fontReader, err error) {
	defer func() {
		if p := recover(); p != nil {
			fr, err = nil, fmt.Errorf("reading fonts: %v", p)
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading fonts: %w", err)
	}
	return &fontReader{r: r}, nil
}

// page returns the resources of page nr (1-based), or nil when the page
// cannot be found.
func (fr *fontReader) page(nr int) (res Resources) {
	if fr == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			res = nil
		}
	}()
	if nr > fr.r.NumPage() {
		return nil
	}
	p := fr.r.Page(nr)
	if p.V.IsNull() {
		return nil
	}
	return holder{p: p}
}

// holder is a page or form XObject; both carry a /Resources dictionary.
type holder struct {
	p pdf.Page
}

// Font returns a decoder for the named font. Named encodings the font
// library does not map, and simple fonts without a ToUnicode CMap, are left
// to decodeString.
func (h holder) Font(name string) (d Decoder) {
	defer func() {
		if recover() != nil {
			d = nil
		}
	}()
	f := h.p.Font(name)
	if f.V.IsNull() {
		return nil
	}
	hasCMap := f.V.Key("ToUnicode").Kind() == pdf.Stream
	enc := f.V.Key("Encoding")
	switch enc.Kind() {
	case pdf.Name:
		switch enc.Name() {
		case "WinAnsiEncoding", "MacRomanEncoding":
		case "Identity-H":
			if !hasCMap {
				// CIDs are taken as Unicode code points.
				return decodeUTF16
			}
		default:
			return nil
		}
	case pdf.Null:
		if !hasCMap {
			return nil
		}
	}
	te := f.Encoder()
	return func(raw []byte) (text string) {
		defer func() {
			if recover() != nil {
				text = decodeString(raw)
			}
		}()
		return te.Decode(string(raw))
	}
}

// Form returns the decoded content of the named form XObject. A form
// without its own resources draws with the resources of its caller.
func (h holder) Form(name string) (content []byte, res Resources, ok bool) {
	defer func() {
		if recover() != nil {
			content, res, ok = nil, nil, false
		}
	}()
	x := h.p.Resources().Key("XObject").Key(name)
	if x.Kind() != pdf.Stream || x.Key("Subtype").Name() != "Form" {
		return nil, nil, false
	}
	rc := x.Reader()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, nil, false
	}
	if x.Key("Resources").IsNull() {
		return data, h, true
	}
	return data, holder{p: pdf.Page{V: x}}, true
}
