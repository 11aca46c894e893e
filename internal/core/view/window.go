package view

import (
	"strconv"
	"strings"
)

// DefaultWindow はページ番号リンクの既定表示幅です。
const DefaultWindow = 5

// PageLink はページャに並ぶ要素です。Elided が true のものは省略記号を表します。
type PageLink struct {
	Page   int
	Elided bool
}

func (l PageLink) String() string {
	if l.Elided {
		return "..."
	}
	return strconv.Itoa(l.Page)
}

// Window は current を中心に width 個のページ番号を並べ、先頭・末尾ページと省略記号を補います。
// totalPages が width 以下なら全ページを省略記号なしで返します。
func Window(current, totalPages, width int) []PageLink {
	if width <= 0 {
		width = DefaultWindow
	}
	if totalPages <= 0 {
		return []PageLink{}
	}

	links := make([]PageLink, 0, width+4)
	if totalPages <= width {
		for p := 1; p <= totalPages; p++ {
			links = append(links, PageLink{Page: p})
		}
		return links
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > totalPages {
		end = totalPages
		start = max(1, end-width+1)
	}

	if start > 1 {
		links = append(links, PageLink{Page: 1})
		if start > 2 {
			links = append(links, PageLink{Elided: true})
		}
	}
	for p := start; p <= end; p++ {
		links = append(links, PageLink{Page: p})
	}
	if end < totalPages {
		if end < totalPages-1 {
			links = append(links, PageLink{Elided: true})
		}
		links = append(links, PageLink{Page: totalPages})
	}
	return links
}

// FormatWindow はページャを空白区切りの文字列にします。
func FormatWindow(links []PageLink) string {
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
