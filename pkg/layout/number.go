package layout

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// message.Printer carries internal buffers and is not safe for concurrent use.
var printerPool = sync.Pool{
	New: func() interface{} {
		return message.NewPrinter(language.English)
	},
}

// CommaSeparate formats n in decimal with a comma between each group of three
// digits, counting from the right: 1005502 becomes "1,005,502".
func CommaSeparate(n int) string {
	return CommaSeparate64(int64(n))
}

// CommaSeparate64 is CommaSeparate for int64 values.
func CommaSeparate64(n int64) string {
	p, ok := printerPool.Get().(*message.Printer)
	if !ok || p == nil {
		p = message.NewPrinter(language.English)
	}
	defer printerPool.Put(p)
	return p.Sprintf("%d", n)
}
