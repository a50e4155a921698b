package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/checkout-pricing/internal/catalogfile"
	"github.com/noah-isme/checkout-pricing/internal/promotion"
)

func TestLoad(t *testing.T) {
	inv, err := catalogfile.Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"cheese", "coke", "ham", "sugar", "sweet pepper"}, inv.Names())

	ham, ok := inv.Retrieve("ham")
	require.True(t, ok)
	require.True(t, ham.ByWeight())
	require.Nil(t, ham.Promotion())

	sugar, _ := inv.Retrieve("sugar")
	require.Equal(t, int64(770), sugar.EffectivePrice())

	cheese, _ := inv.Retrieve("cheese")
	bogo, ok := cheese.Promotion().(*promotion.Bogo)
	require.True(t, ok)
	require.Equal(t, int64(3), bogo.PurchaseQuantity())
	limit, set := bogo.Limit()
	require.True(t, set)
	require.Equal(t, int64(4), limit)

	coke, _ := inv.Retrieve("coke")
	bulk, ok := coke.Promotion().(*promotion.Bulk)
	require.True(t, ok)
	require.Equal(t, int64(1200), bulk.DiscountPrice())
	_, set = bulk.Limit()
	require.False(t, set)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalogfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidPromotion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := "products:\n  - name: fish\n    price: 598\n    promotion: {kind: BOGO, purchase: 0, discount: 1, percent: 70}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := catalogfile.Load(path)
	require.ErrorIs(t, err, catalogfile.ErrInvalidEntry)
	require.ErrorIs(t, err, promotion.ErrInvalidPromotion)
}

func TestBuildValidatesEntries(t *testing.T) {
	_, err := catalogfile.Build([]catalogfile.Entry{{Name: "", Price: 10}})
	require.ErrorIs(t, err, catalogfile.ErrInvalidEntry)

	_, err = catalogfile.Build([]catalogfile.Entry{{Name: "tea", Price: 10, Promotion: &catalogfile.PromotionEntry{Kind: "TIERED"}}})
	require.ErrorIs(t, err, catalogfile.ErrInvalidEntry)

	inv, err := catalogfile.Build([]catalogfile.Entry{
		{Name: "tea", Price: 299},
		{Name: "tea", Price: 349},
	})
	require.NoError(t, err)
	tea, _ := inv.Retrieve("tea")
	require.Equal(t, int64(349), tea.UnitPrice())
}

func TestBuildRejectsNegativeMarkdown(t *testing.T) {
	_, err := catalogfile.Build([]catalogfile.Entry{{Name: "eggs", Price: 299, Markdown: -72}})
	require.ErrorIs(t, err, catalogfile.ErrInvalidEntry)
}
