package req

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"seatplan/pkg/errcodes"
)

const maxUploadSize = 8 << 20

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// QueryInt returns the integer query parameter name, or def when absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.Atoi: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(fmt.Sprintf("%s must be an integer", name)),
		)
	}

	return v, nil
}

// QueryBool reports whether the query parameter name is set to a true value.
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseBool: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(fmt.Sprintf("%s must be a boolean", name)),
		)
	}

	return v, nil
}

// File reads the multipart form file field into memory.
func File(r *http.Request, field string) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.ParseMultipartForm: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid multipart form"),
		)
	}

	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("r.FormFile: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(fmt.Sprintf("%s file is required", field)),
		)
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return body, nil
}
