package inquiry_test

import (
	"testing"

	"freightmarket/internal/core/domain/model/inquiry"
	"freightmarket/internal/core/domain/model/kernel"
	"freightmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePackage(t *testing.T) []inquiry.Package {
	t.Helper()
	pkg, err := inquiry.NewPackage(100, 1, inquiry.WithVolume(0.2))
	require.NoError(t, err)
	return []inquiry.Package{pkg}
}

func TestNewInquiry(t *testing.T) {
	t.Run("should create a draft inquiry", func(t *testing.T) {
		id := kernel.NewUUID()
		shipperOrgID := kernel.NewUUID()

		inq, err := inquiry.NewInquiry(id, shipperOrgID, inquiry.AirFreight, singlePackage(t))

		require.NoError(t, err)
		assert.NoError(t, inq.Validate())
		assert.True(t, inq.ID().IsEqual(id))
		assert.True(t, inq.ShipperOrgID().IsEqual(shipperOrgID))
		assert.Equal(t, inquiry.AirFreight, inq.ServiceType())
		assert.Equal(t, inquiry.Draft, inq.Status())
		assert.Len(t, inq.Packages(), 1)
	})

	t.Run("should reject an invalid identifier", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.UUID{}, kernel.NewUUID(), inquiry.AirFreight, singlePackage(t))

		require.Error(t, err)
	})

	t.Run("should reject an invalid service type", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.ServiceTypeUnknown, singlePackage(t))

		require.Error(t, err)
	})

	t.Run("should reject an empty package collection", func(t *testing.T) {
		_, err := inquiry.NewInquiry(kernel.NewUUID(), kernel.NewUUID(), inquiry.AirFreight, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unconstructed package", func(t *testing.T) {
		_, err := inquiry.NewInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.AirFreight,
			[]inquiry.Package{{}})

		require.ErrorIs(t, err, inquiry.ErrPackageIsNotConstructed)
	})
}

func TestRestoreInquiry(t *testing.T) {
	t.Run("should restore with an explicit status", func(t *testing.T) {
		inq, err := inquiry.RestoreInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.SeaFreight, inquiry.Open, singlePackage(t))

		require.NoError(t, err)
		assert.Equal(t, inquiry.Open, inq.Status())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := inquiry.RestoreInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.SeaFreight, inquiry.Unknown, singlePackage(t))

		require.Error(t, err)
	})
}

func TestInquiry_Transitions(t *testing.T) {
	newDraft := func(t *testing.T) *inquiry.Inquiry {
		t.Helper()
		inq, err := inquiry.NewInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.RoadFreight, singlePackage(t))
		require.NoError(t, err)
		return inq
	}

	t.Run("should walk draft through open to awarded", func(t *testing.T) {
		inq := newDraft(t)

		require.NoError(t, inq.Open())
		assert.Equal(t, inquiry.Open, inq.Status())

		require.NoError(t, inq.Award())
		assert.Equal(t, inquiry.Awarded, inq.Status())
	})

	t.Run("should not open twice", func(t *testing.T) {
		inq := newDraft(t)

		require.NoError(t, inq.Open())
		require.Error(t, inq.Open())
	})

	t.Run("should not award a draft", func(t *testing.T) {
		inq := newDraft(t)

		require.Error(t, inq.Award())
		assert.Equal(t, inquiry.Draft, inq.Status())
	})

	t.Run("should cancel a draft", func(t *testing.T) {
		inq := newDraft(t)

		require.NoError(t, inq.Cancel())
		assert.Equal(t, inquiry.Cancelled, inq.Status())
	})

	t.Run("should cancel an open inquiry", func(t *testing.T) {
		inq := newDraft(t)
		require.NoError(t, inq.Open())

		require.NoError(t, inq.Cancel())
		assert.Equal(t, inquiry.Cancelled, inq.Status())
	})

	t.Run("should not mutate status on a failed transition", func(t *testing.T) {
		inq := newDraft(t)

		require.Error(t, inq.Expire())
		assert.Equal(t, inquiry.Draft, inq.Status())
	})

	t.Run("should expire and close only from open", func(t *testing.T) {
		openInquiry := newDraft(t)
		require.NoError(t, openInquiry.Open())
		require.NoError(t, openInquiry.Expire())
		assert.Equal(t, inquiry.Expired, openInquiry.Status())

		another := newDraft(t)
		require.NoError(t, another.Open())
		require.NoError(t, another.Close())
		assert.Equal(t, inquiry.Closed, another.Status())
	})
}

func TestInquiry_Validate(t *testing.T) {
	t.Run("should reject a zero-value inquiry", func(t *testing.T) {
		var inq inquiry.Inquiry

		require.ErrorIs(t, inq.Validate(), inquiry.ErrInquiryIsNotConstructed)
	})

	t.Run("should reject a nil inquiry", func(t *testing.T) {
		var inq *inquiry.Inquiry

		require.ErrorIs(t, inq.Validate(), inquiry.ErrInquiryIsNotConstructed)
	})
}

func TestInquiry_Packages(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		inq, err := inquiry.NewInquiry(
			kernel.NewUUID(), kernel.NewUUID(), inquiry.AirFreight, singlePackage(t))
		require.NoError(t, err)

		first := inq.Packages()
		second := inq.Packages()

		require.Len(t, first, 1)
		first[0] = inquiry.Package{}
		assert.NoError(t, second[0].Validate())
		assert.NoError(t, inq.Packages()[0].Validate())
	})
}

func TestInquiry_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := inquiry.NewInquiry(id, kernel.NewUUID(), inquiry.AirFreight, singlePackage(t))
		require.NoError(t, err)
		b, err := inquiry.RestoreInquiry(
			id, kernel.NewUUID(), inquiry.SeaFreight, inquiry.Open, singlePackage(t))
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
