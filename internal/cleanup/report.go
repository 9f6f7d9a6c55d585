package cleanup

import (
	"bytes"
	"text/template"

	"github.com/akuntansi/swagger-cleanup/internal/files"
)

// The original report listed every target under "Removed Endpoints" whether
// the run actually removed it or not. Each entry now carries its real
// outcome, the static list and verbs stay as authored.
var reportTemplate = template.Must(template.New("report").Parse(`# Swagger Cleanup Report

## Summary
- **Date**: {{ .Date }}
- **Total endpoints targeted for removal**: {{ .Targeted }}
- **Successfully removed**: {{ .Removed }}
- **Backup location**: {{ .BackupPath }}

## Targeted Endpoints
{{ range .Groups }}
### {{ .Name }}
{{ range .Entries }}- ` + "`{{ .Path }}`" + ` ({{ .Verbs }}) - {{ .Outcome }}
{{ end }}{{ end }}
## Notes
- All removed endpoints were identified as unused based on comprehensive frontend code analysis
- Backend implementation remains intact - only Swagger documentation was cleaned
- Some endpoints may be used by external integrations or admin tools not covered in this analysis
- To restore the original Swagger file, use the backup located at: ` + "`{{ .BackupPath }}`" + `

## Next Steps
1. ✅ Swagger documentation cleaned
2. ⏳ Test Swagger UI to ensure it loads correctly
3. ⏳ Verify API documentation reflects only used endpoints
4. 📋 Consider implementing any useful endpoints that should be in frontend
`))

type reportEntry struct {
	Path    string
	Verbs   string
	Outcome string
}

type reportGroup struct {
	Name    string
	Entries []reportEntry
}

type reportData struct {
	Date       string
	Targeted   int
	Removed    int
	BackupPath string
	Groups     []reportGroup
}

// WriteReport renders the markdown cleanup report to filePath.
// The full targeted set is always listed, grouped as in the removal list,
// with per-endpoint outcomes taken from the run result.
func WriteReport(filePath string, res *Result, groups []TargetGroup) error {
	removed := res.RemovedSet()

	data := reportData{
		Date:       res.RanAt.Format("2006-01-02 15:04:05"),
		Targeted:   len(AllPaths(groups)),
		Removed:    len(res.Removed),
		BackupPath: res.BackupPath,
	}

	for _, g := range groups {
		rg := reportGroup{Name: g.Name}
		for _, t := range g.Targets {
			outcome := "not found"
			if removed[t.Path] {
				outcome = "removed"
			}
			rg.Entries = append(rg.Entries, reportEntry{
				Path:    t.Path,
				Verbs:   t.Verbs,
				Outcome: outcome,
			})
		}
		data.Groups = append(data.Groups, rg)
	}

	var b bytes.Buffer
	if err := reportTemplate.Execute(&b, data); err != nil {
		return err
	}

	return files.SaveFile(filePath, b.Bytes())
}
