// Package service содержит команды админ-панели поверх репозиториев:
// валидацию форм, производные представления и уведомления о результатах.
package service

import (
	"context"
	"errors"

	"github.com/jaswanth12321/ecom-admin-suite/internal/notify"
)

// notifyValidation публикует одно error-уведомление об отклонённой форме.
func notifyValidation(ctx context.Context, n notify.Notifier, title string, err error) {
	msg := err.Error()
	var v *ValidationError
	if errors.As(err, &v) {
		msg = v.First()
	}
	n.Notify(ctx, notify.KindError, title, msg)
}
