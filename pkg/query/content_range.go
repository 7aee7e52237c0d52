package query

import (
	"fmt"
)

// ContentRangeHeader is the response header carrying pagination metadata.
const ContentRangeHeader = "Content-Range"

// ContentRange formats the header value for a page, e.g. "clientes 0-4/10".
func ContentRange(resource string, p Page) string {
	return fmt.Sprintf("%s %d-%d/%d", resource, p.Start, p.End, p.Total)
}

// ParseContentRange reads a header produced by ContentRange.
// The returned Page carries Start, End and Total but no items.
func ParseContentRange(header string) (string, Page, error) {
	var resource string
	var p Page
	n, err := fmt.Sscanf(header, "%s %d-%d/%d", &resource, &p.Start, &p.End, &p.Total)
	if err != nil || n != 4 {
		return "", Page{}, fmt.Errorf("malformed %s header %q", ContentRangeHeader, header)
	}
	return resource, p, nil
}
