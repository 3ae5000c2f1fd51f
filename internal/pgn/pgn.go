package pgn

import (
	"regexp"
	"strings"
)

var headerRe = regexp.MustCompile(`\[(\w+)\s+"([^"]+)"\]`)

// ParseHeaders extracts PGN header tags into a map.
func ParseHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = m[2]
		}
	}
	return out
}

var (
	headerLineRe = regexp.MustCompile(`(?m)^\[[^\]]*\]\s*$`)
	moveMarkerRe = regexp.MustCompile(`(\d+)\.`)
)

// CountMoves scans move text for move-number markers of the form "<n>." and
// returns the highest number found. Header lines are stripped first so tag
// values never contribute markers. Returns 0 when no marker is present.
func CountMoves(moveText string) int {
	body := headerLineRe.ReplaceAllString(moveText, "")
	max := 0
	for _, m := range moveMarkerRe.FindAllStringSubmatch(body, -1) {
		n := 0
		for _, c := range m[1] {
			n = n*10 + int(c-'0')
		}
		if n > max {
			max = n
		}
	}
	return max
}

var digitRunRe = regexp.MustCompile(`(\d+)`)

// OpeningFromECOURL turns a chess.com ECO reference URL into a readable
// opening name: the path segment after "/openings/" with hyphens replaced by
// spaces and a space inserted before digit runs so move numbers stay legible
// ("Giuoco Piano 4", not "Giuoco Piano4"). Returns "" when the URL has no
// openings segment.
func OpeningFromECOURL(url string) string {
	const marker = "/openings/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	slug := url[idx+len(marker):]
	if slug == "" {
		return ""
	}
	name := strings.ReplaceAll(slug, "-", " ")
	name = digitRunRe.ReplaceAllString(name, " $1")
	return strings.Join(strings.Fields(name), " ")
}
