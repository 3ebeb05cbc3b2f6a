package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/utils"
)

type envelope struct {
	Data pipeline.Payload `json:"data"`
}

// run decodes the request envelope, executes p and then terminal, and
// writes whichever outcome comes first.
func run(c *gin.Context, p pipeline.Pipeline, terminal pipeline.Terminal) {
	data, err := bindData(c)
	if err != nil {
		fail(c, err)
		return
	}

	params := make(map[string]string, len(c.Params))
	for _, param := range c.Params {
		params[param.Key] = param.Value
	}

	req := pipeline.NewRequest(c.Request.Context(), params, data)
	res, err := p.Execute(req, terminal)
	if err != nil {
		fail(c, err)
		return
	}

	if res.Status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	utils.RespondJSON(c, res.Status, res.Data)
}

// bindData returns the "data" object of a JSON body. Requests without a
// body yield an empty payload.
func bindData(c *gin.Context) (pipeline.Payload, error) {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return pipeline.Payload{}, nil
	}

	var body envelope
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return pipeline.Payload{}, nil
		}
		return nil, utils.Validationf("Request body must be a JSON object with a data object: %v", err)
	}
	return body.Data, nil
}

func fail(c *gin.Context, err error) {
	var httpErr utils.HTTPError
	if errors.As(err, &httpErr) {
		utils.InfoLogger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     httpErr.HTTPStatus(),
			"request_id": c.GetString("rid"),
		}).Info(err.Error())
	}
	utils.RespondError(c, err)
}
