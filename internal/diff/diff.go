package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

var dmp *diffmatchpatch.DiffMatchPatch

func init() {
	dmp = diffmatchpatch.New()
}

func FindPatches(text1, text2 string) string {
	diffs := dmp.DiffMain(text1, text2, false)
	return dmp.PatchToText(dmp.PatchMake(diffs))
}

// Texts renders element texts one per line, as "Element: text", so that two imports can be compared.
func Texts(texts []domain.ElementText) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(t.Element)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
