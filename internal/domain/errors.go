package domain

import "errors"

// ErrInvalidArgument возвращается, когда параметры запроса невалидны (HTTP 400).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUpstream возвращается, когда внешний API ответил ошибкой или недоступен.
var ErrUpstream = errors.New("upstream error")

// ErrMalformedResponse возвращается, когда ответ внешнего API не удалось разобрать.
var ErrMalformedResponse = errors.New("malformed upstream response")

// ErrNoData возвращается, когда внешний API ответил успешно, но без данных.
var ErrNoData = errors.New("no data")

// ErrNotFound возвращается, когда запрошенная сущность отсутствует в хранилище.
var ErrNotFound = errors.New("not found")
