package httpx

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindStrictJSON decodes a JSON body into v, rejecting unknown fields, then
// runs the standard binding validation. Handlers use it wherever the API
// contract says unexpected properties are an error.
func BindStrictJSON(c *gin.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(v)
}
