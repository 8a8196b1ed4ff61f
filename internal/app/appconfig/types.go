package appconfig

import (
	"votemap.tw/backend/internal/app/appcontext"
)

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
