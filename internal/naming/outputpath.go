package naming

import (
	"fmt"
	"path/filepath"
)

// BuildFilename formats k as CC_SS<ext> or CC_SS_TT<ext>, each field padded
// to at least two digits. ext includes its leading dot. Fields are not
// validated.
func BuildFilename(k Key, ext string) string {
	name := fmt.Sprintf("%02d%s%02d", k.Chapter, FieldSep, k.Section)
	if k.HasSubsection() {
		name += fmt.Sprintf("%s%02d", FieldSep, *k.Subsection)
	}
	return name + ext
}

// OutputPath places the canonical filename for k directly inside destDir.
// The source's directory structure is discarded.
//
//	<destDir>/CC_SS[_TT]<ext>
func OutputPath(destDir string, k Key, ext string) string {
	return filepath.Join(destDir, BuildFilename(k, ext))
}
