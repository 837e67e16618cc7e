// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
)

// SiteName is the product name shown in the shared chrome.
const SiteName = "BenchBoard"

// BaseVM contains common fields for all view models. Embed it in
// feature-specific view models:
//
//	type rosterData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := rosterData{
//	    BaseVM: viewdata.NewBaseVM(r, "Bench Roster", "/home"),
//	    // ...
//	}
type BaseVM struct {
	SiteName string

	// Session context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// ShowAdminLinks gates the "Manage Users" and candidate-edit entries
	// in the nav; trainers never see them.
	ShowAdminLinks bool

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, signedIn := authz.UserCtx(r)

	return BaseVM{
		SiteName:       SiteName,
		IsLoggedIn:     signedIn,
		Role:           role,
		UserName:       name,
		ShowAdminLinks: authz.IsAdmin(r),
		Title:          title,
		BackURL:        httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:    httpnav.CurrentPath(r),
	}
}
