package record

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domrec "github.com/kailas-cloud/folio/internal/domain/record"
)

// ExtractHTML reads content cards and blog cards out of a rendered page.
// Cards come first, then posts, each in document order.
func ExtractHTML(r io.Reader) ([]domrec.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		out     []domrec.Record
		convErr error
	)

	doc.Find(".content-card").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var tags []string
		s.Find(".tag").Each(func(_ int, t *goquery.Selection) {
			if v := condense(t.Text()); v != "" {
				tags = append(tags, v)
			}
		})
		rec, err := domrec.New(domrec.Fields{
			ID:          attr(s, "id"),
			Kind:        domrec.KindCard,
			Title:       condense(s.Find(".card-title").First().Text()),
			Description: condense(s.Find(".card-description").First().Text()),
			Tags:        tags,
			Category:    condense(s.Find(".category").First().Text()),
			Href:        attr(s.Find("a").First(), "href"),
		})
		if err != nil {
			convErr = fmt.Errorf("content card: %w", err)
			return false
		}
		out = append(out, rec)
		return true
	})
	if convErr != nil {
		return nil, convErr
	}

	doc.Find(".blog-card").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rec, err := domrec.New(domrec.Fields{
			ID:          attr(s, "id"),
			Kind:        domrec.KindPost,
			Title:       condense(s.Find(".blog-title, .card-title, h2, h3").First().Text()),
			Description: condense(s.Find(".blog-excerpt, .card-description, p").First().Text()),
			Category:    attr(s, "data-category"),
			Date:        condense(s.Find(".date").First().Text()),
			Views:       parseViews(s.Find(".views").First().Text()),
			Href:        attr(s.Find("a").First(), "href"),
		})
		if err != nil {
			convErr = fmt.Errorf("blog card: %w", err)
			return false
		}
		out = append(out, rec)
		return true
	})
	if convErr != nil {
		return nil, convErr
	}

	return out, nil
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseViews keeps the digits of labels like "1,204 views".
func parseViews(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
