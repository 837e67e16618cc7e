// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// DBDeps holds backend dependencies for the app: the BMS API client that
// serves all bench data, and the optional Mongo connection backing the
// audit trail.
type DBDeps struct {
	BMS *bms.Client

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Audit         *audit.Store
}
