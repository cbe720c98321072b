package usecase

import (
	"context"
	"testing"

	"github.com/printeasy/printeasy/internal/domain/model"
	testhelpers "github.com/printeasy/printeasy/internal/test"
)

func twoPageItem(copies int) model.LineItem {
	return model.LineItem{
		Files: []model.FileRef{{Name: "doc.pdf", URL: "https://cdn/doc.pdf", RemoteID: "doc-1", PageCount: 10}},
		Customizations: []model.Customization{{
			PaperType:     model.PaperTypeStandard,
			PaperSize:     model.PaperSizeA4,
			ColorMode:     model.ColorModeBlackAndWhite,
			PrintingSides: model.SidesSingle,
			Copies:        copies,
		}},
		Quantity: 1,
	}
}

func TestCartUseCasePutRepricesItems(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(repo, 70)

	item := twoPageItem(2)
	item.TotalPrice = 1 // client-supplied price must be ignored

	cart, totals, err := uc.Put(context.Background(), 5, []model.LineItem{item})
	if err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	if cart.Items[0].TotalPrice != 50 {
		t.Fatalf("expected repriced item 50, got %v", cart.Items[0].TotalPrice)
	}
	if totals.Subtotal != 50 || totals.DeliveryFee != 70 || totals.Total != 120 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestCartUseCasePutClampsQuantityAndCopies(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(repo, 70)

	item := twoPageItem(0)
	item.Quantity = -3

	cart, _, err := uc.Put(context.Background(), 5, []model.LineItem{item})
	if err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Customizations[0].Copies != 1 {
		t.Fatalf("expected copies clamped to 1, got %d", cart.Items[0].Customizations[0].Copies)
	}
}

func TestCartUseCaseGetEmptyCart(t *testing.T) {
	uc := NewCartUseCase(testhelpers.NewCartRepositoryStub(), 70)

	cart, totals, err := uc.Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}
	if totals.Total != 0 {
		t.Fatalf("empty cart must cost nothing, got %v", totals.Total)
	}
}

func TestCartUseCaseClear(t *testing.T) {
	repo := testhelpers.NewCartRepositoryStub()
	uc := NewCartUseCase(repo, 70)

	ctx := context.Background()
	if _, _, err := uc.Put(ctx, 3, []model.LineItem{twoPageItem(1)}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := uc.Clear(ctx, 3); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, _, err := uc.Get(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected cart cleared, got %d items", len(cart.Items))
	}
}
