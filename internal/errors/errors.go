package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError; an empty message takes the default for the code
func New(code, message string) *AppError {
	if message == "" {
		message = UserMessage(code)
	}
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	if message == "" {
		message = UserMessage(code)
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Code extracts the application error code, or CodeInternal for
// unclassified errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Error code constants. The pipeline codes are stable machine-readable
// prefixes surfaced to API clients.
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInvalidArg = "INVALID_ARGUMENT"
	CodeExternal   = "EXTERNAL_ERROR"
	CodeConflict   = "CONFLICT"         // Resource already exists (UNIQUE violation)
	CodeDependency = "DEPENDENCY_ERROR" // Foreign key constraint violation

	CodeUnauthorized = "UNAUTHORIZED"

	// Pipeline error codes
	CodeInvalidURL          = "INVALID_URL"
	CodeConfigMissing       = "CONFIG_MISSING"
	CodeVideoNotFound       = "VIDEO_NOT_FOUND"
	CodeTranscriptForbidden = "TRANSCRIPT_FORBIDDEN"
	CodeTranscriptAPIError  = "TRANSCRIPT_API_ERROR"
	CodeNoTranscript        = "NO_TRANSCRIPT"
	CodeSummaryTimeout      = "SUMMARY_TIMEOUT"
	CodeSummaryRegion       = "SUMMARY_REGION_BLOCKED"
	CodeSummaryKeyInvalid   = "SUMMARY_KEY_INVALID"
	CodeSummaryUnavailable  = "SUMMARY_UNAVAILABLE"
	CodeSummaryFailed       = "SUMMARY_FAILED"
)

// statusByCode maps every error code to the HTTP status returned to
// API clients. Unlisted codes fall back to 400.
var statusByCode = map[string]int{
	CodeInternal:   http.StatusInternalServerError,
	CodeNotFound:   http.StatusNotFound,
	CodeInvalidArg: http.StatusBadRequest,
	CodeExternal:   http.StatusBadGateway,
	CodeConflict:   http.StatusConflict,
	CodeDependency: http.StatusConflict,

	CodeUnauthorized: http.StatusUnauthorized,

	CodeInvalidURL:          http.StatusBadRequest,
	CodeConfigMissing:       http.StatusInternalServerError,
	CodeVideoNotFound:       http.StatusNotFound,
	CodeTranscriptForbidden: http.StatusForbidden,
	CodeTranscriptAPIError:  http.StatusBadGateway,
	CodeNoTranscript:        http.StatusUnprocessableEntity,
	CodeSummaryTimeout:      http.StatusGatewayTimeout,
	CodeSummaryRegion:       http.StatusBadGateway,
	CodeSummaryKeyInvalid:   http.StatusInternalServerError,
	CodeSummaryUnavailable:  http.StatusServiceUnavailable,
	CodeSummaryFailed:       http.StatusBadGateway,
}

// userMessageByCode maps error codes to the Russian messages shown to
// users. Log messages stay in English; only these leave the service.
var userMessageByCode = map[string]string{
	CodeInternal:   "Внутренняя ошибка сервера",
	CodeNotFound:   "Аннотация не найдена",
	CodeInvalidArg: "Некорректный запрос",
	CodeExternal:   "Ошибка внешнего сервиса",
	CodeConflict:   "Аннотация для этого видео уже существует",
	CodeDependency: "Связанный ресурс не найден",

	CodeUnauthorized: "Необходима авторизация",

	CodeInvalidURL:          "Неверная ссылка на YouTube видео",
	CodeConfigMissing:       "API ключ сервиса не настроен",
	CodeVideoNotFound:       "Видео не найдено",
	CodeTranscriptForbidden: "Доступ к транскрипту этого видео запрещён",
	CodeTranscriptAPIError:  "Ошибка получения данных от сервиса транскриптов",
	CodeNoTranscript:        "Не удалось получить транскрипт. Возможно, у видео нет субтитров.",
	CodeSummaryTimeout:      "Превышено время ожидания ответа от AI API. Попробуйте ещё раз.",
	CodeSummaryRegion:       "Невозможно получить доступ к Google Gemini API из вашего региона. Свяжитесь с администратором.",
	CodeSummaryKeyInvalid:   "Ошибка ключа API. Проверьте конфигурацию Google Gemini API.",
	CodeSummaryUnavailable:  "Сервис суммаризации временно недоступен. Попробуйте позже.",
	CodeSummaryFailed:       "Ошибка при создании резюме. Попробуйте ещё раз.",
}

// HTTPStatus returns the HTTP status for err based on its code.
func HTTPStatus(err error) int {
	if status, ok := statusByCode[Code(err)]; ok {
		return status
	}
	return http.StatusBadRequest
}

// UserMessage returns the localized user-facing message for a code.
func UserMessage(code string) string {
	if msg, ok := userMessageByCode[code]; ok {
		return msg
	}
	return userMessageByCode[CodeInternal]
}
