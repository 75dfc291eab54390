package replica

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/skillshare-dao/sdao-cli/internal/domain"
)

func TestWrapErr(t *testing.T) {
	t.Run("constraint violations are permanent rejections", func(t *testing.T) {
		for _, cause := range []error{
			gorm.ErrDuplicatedKey,
			gorm.ErrCheckConstraintViolated,
			gorm.ErrForeignKeyViolated,
			gorm.ErrInvalidData,
		} {
			err := wrapErr("insert vote", cause)
			assert.ErrorIs(t, err, domain.ErrReplicaRejected, "cause=%v", cause)
			assert.NotErrorIs(t, err, domain.ErrReplicaUnavailable, "cause=%v", cause)
			assert.ErrorIs(t, err, cause)
		}
	})

	t.Run("everything else is a transient outage", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := wrapErr("list proposals", cause)
		assert.ErrorIs(t, err, domain.ErrReplicaUnavailable)
		assert.NotErrorIs(t, err, domain.ErrReplicaRejected)
		assert.ErrorIs(t, err, cause)
	})
}
