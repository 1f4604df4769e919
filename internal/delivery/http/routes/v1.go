package routes

import (
	"github.com/gofiber/fiber/v3"

	v1 "talentmatch/internal/delivery/http/routes/v1"
)

func RegisterV1(r fiber.Router, deps Deps) error {
	if r == nil {
		return nil
	}

	return v1.Register(r, v1.Deps{
		Config:  deps.Config,
		DB:      deps.DB,
		Cache:   deps.Cache,
		Logger:  deps.Logger,
		Catalog: deps.Catalog,
		Index:   deps.Index,
		Engine:  deps.Engine,
	})
}
