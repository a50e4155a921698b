package register_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/checkout-pricing/internal/inventory"
	"github.com/noah-isme/checkout-pricing/internal/obs"
	"github.com/noah-isme/checkout-pricing/internal/pricing"
	"github.com/noah-isme/checkout-pricing/internal/product"
	"github.com/noah-isme/checkout-pricing/internal/promotion"
	"github.com/noah-isme/checkout-pricing/internal/register"
)

func TestCheckoutSession(t *testing.T) {
	inv := inventory.New()
	inv.Insert(product.New("tea", 299))
	inv.Insert(product.New("chips", 185))
	inv.Insert(product.New("chicken", 499, product.ByWeight()))
	sugar := product.New("sugar", 895)
	sugar.SetMarkdown(125)
	inv.Insert(sugar)
	pepper := product.New("sweet pepper", 499, product.ByWeight())
	pepper.SetMarkdown(99)
	inv.Insert(pepper)
	inv.Insert(promoted("cereal", 299, promotion.MustBogo(1, 1, 50, promotion.WithLimit(2))))

	reg := register.New()
	reg.AssignInventory(inv)
	require.Zero(t, reg.Total())
	require.Zero(t, reg.Quantity("tea"))

	require.True(t, reg.ScanItem("tea", noWeight))
	require.Equal(t, pricing.Money(299), reg.Total())

	require.True(t, reg.ScanItem("chips", noWeight))
	require.Equal(t, pricing.Money(299+185), reg.Total())

	require.True(t, reg.RemoveItem("tea", noWeight))
	require.Equal(t, pricing.Money(185), reg.Total())
	require.Zero(t, reg.Quantity("tea"))

	require.False(t, reg.RemoveItem("tea", noWeight))
	require.Equal(t, pricing.Money(185), reg.Total())

	require.True(t, reg.ScanItem("chicken", 147))
	require.Equal(t, pricing.Money(185+734), reg.Total())
	require.Equal(t, int64(147), reg.Quantity("chicken"))

	require.True(t, reg.RemoveItem("chicken", 32))
	require.Equal(t, pricing.Money(185+734-160), reg.Total())
	require.Equal(t, int64(115), reg.Quantity("chicken"))

	total := reg.Total()
	require.False(t, reg.RemoveItem("chicken", 600))
	require.Equal(t, total, reg.Total())
	require.Equal(t, int64(115), reg.Quantity("chicken"))

	require.True(t, reg.ScanItem("sugar", noWeight))
	require.Equal(t, total+770, reg.Total())
	require.True(t, reg.RemoveItem("sugar", noWeight))
	require.Equal(t, total, reg.Total())

	require.True(t, reg.ScanItem("sweet pepper", 304))
	require.Equal(t, total+1216, reg.Total())
	require.True(t, reg.RemoveItem("sweet pepper", 176))
	require.Equal(t, total+1216-704, reg.Total())

	total = reg.Total()
	reg.ScanItem("cereal", noWeight)
	reg.ScanItem("cereal", noWeight)
	require.Equal(t, total+299+150, reg.Total())
}

func TestRegisterRecordsMetrics(t *testing.T) {
	metrics := obs.NewRegisterMetrics("checkout", prometheus.NewRegistry())
	inv := inventory.New()
	inv.Insert(product.New("milk", 799))
	reg := register.New(register.WithRecorder(metrics))
	reg.AssignInventory(inv)

	reg.ScanItem("milk", noWeight)
	reg.ScanItem("bread", noWeight)
	reg.RemoveItem("milk", noWeight)
	reg.RemoveItem("milk", noWeight)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("scan", obs.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("scan", obs.ResultRejected)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("remove", obs.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Operations.WithLabelValues("remove", obs.ResultRejected)))
	require.Equal(t, 799.0, testutil.ToFloat64(metrics.Amount.WithLabelValues("remove")))
}

func TestRegisterLogsWithSession(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	inv := inventory.New()
	inv.Insert(product.New("milk", 799))
	reg := register.New(register.WithLogger(logger))
	reg.AssignInventory(inv)

	reg.ScanItem("milk", noWeight)
	reg.ScanItem("bread", noWeight)

	out := buf.String()
	require.Contains(t, out, reg.ID().String())
	require.Contains(t, out, `"message":"register_update"`)
	require.Contains(t, out, `"message":"register_rejected"`)
	require.Contains(t, out, `"total":799`)
}
