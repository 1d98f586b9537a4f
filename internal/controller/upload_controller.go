package controller

import (
	"errors"

	"ai-study-tutor-be/internal/constant"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Serve(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
	logger  logger.ILogger
}

func NewUploadController(service service.IUploadService, log logger.ILogger) IUploadController {
	return &uploadController{service: service, logger: log}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
	r.Get("/uploads/:filename", c.Serve)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	// A missing part is left to the service, which reports "No file uploaded".
	file, err := ctx.FormFile(constant.UploadFormField)
	if err != nil && !errors.Is(err, fasthttp.ErrMissingFile) {
		c.logger.Warn("UPLOAD", "Failed to parse multipart body", map[string]interface{}{
			"error": err.Error(),
		})
		return apperror.UploadRejected("Invalid multipart body: " + err.Error())
	}

	res, err := c.service.Save(ctx.UserContext(), file)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *uploadController) Serve(ctx *fiber.Ctx) error {
	file, err := c.service.Resolve(ctx.Params("filename"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, file.MimeType)
	return ctx.SendFile(file.Path)
}
