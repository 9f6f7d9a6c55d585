package document

import (
	"strings"

	"github.com/pb33f/libopenapi"
)

// Verify checks that content still parses as an OpenAPI document.
// Works for both swagger 2.0 and OpenAPI 3.x. Model build warnings are
// tolerated as long as a model was produced, circular refs in generated
// swagger files are common and harmless here.
func Verify(content []byte) error {
	lib, err := libopenapi.NewDocument(content)
	if err != nil {
		return err
	}

	if strings.HasPrefix(lib.GetVersion(), "2.") {
		model, errs := lib.BuildV2Model()
		if model == nil && len(errs) > 0 {
			return errs[0]
		}
		return nil
	}

	model, errs := lib.BuildV3Model()
	if model == nil && len(errs) > 0 {
		return errs[0]
	}
	return nil
}
