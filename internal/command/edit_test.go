package command

import (
	"fmt"
	"testing"

	"couponstash/internal/core"
	"couponstash/internal/model"
	"couponstash/internal/testutil"
)

func TestEditAllFieldsUnfilteredList(t *testing.T) {
	m := typicalModel(t)
	edited := testutil.NewCouponBuilder().WithName("Pizza Hut").WithExpiryDate("1-6-2021").
		WithSavings(core.PercentageSavings(testutil.Percent("15"))).WithLimit("4").WithTags("food").Build()
	f := edited.Fields()
	desc := EditCouponDescriptor{
		Name: &f.Name, Phone: &f.Phone, Email: &f.Email, ExpiryDate: &f.ExpiryDate,
		Savings: &f.Savings, Limit: &f.Limit, Tags: &f.Tags,
	}

	want := copyModel(t, m)
	expected := desc.Apply(testutil.Alice)
	if err := want.SetCoupon(testutil.Alice, expected); err != nil {
		t.Fatal(err)
	}

	assertCommandSuccess(t, NewEditCommand(testutil.FirstIndex, desc), m,
		fmt.Sprintf(MessageEditSuccess, expected.Name()), want)

	if expected.Usage() != testutil.Alice.Usage() {
		t.Fatalf("editing must keep the usage count")
	}
}

func TestEditClearTagsKeepsOtherFields(t *testing.T) {
	m := typicalModel(t)
	cleared := core.NewTagSet()

	want := copyModel(t, m)
	expected := testutil.CouponBuilderFrom(testutil.Benson).WithTags().Build()
	if err := want.SetCoupon(testutil.Benson, expected); err != nil {
		t.Fatal(err)
	}

	assertCommandSuccess(t, NewEditCommand(testutil.SecondIndex, EditCouponDescriptor{Tags: &cleared}), m,
		fmt.Sprintf(MessageEditSuccess, expected.Name()), want)
}

func TestEditFilteredListShowsAllAfterwards(t *testing.T) {
	m := typicalModel(t)
	showCouponAtIndex(t, m, testutil.SecondIndex)
	limit, err := core.NewLimit(9)
	if err != nil {
		t.Fatal(err)
	}

	want := copyModel(t, m)
	expected := testutil.CouponBuilderFrom(testutil.Benson).WithLimit("9").Build()
	if err := want.SetCoupon(testutil.Benson, expected); err != nil {
		t.Fatal(err)
	}

	assertCommandSuccess(t, NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{Limit: &limit}), m,
		fmt.Sprintf(MessageEditSuccess, expected.Name()), want)
}

func TestEditFailures(t *testing.T) {
	m := typicalModel(t)
	name := testutil.Benson.Name()
	other := testutil.CouponBuilderFrom(testutil.Benson).WithName("Somebody Else").Build().Name()

	t.Run("duplicate", func(t *testing.T) {
		twin := testutil.CouponBuilderFrom(testutil.Alice).WithName("Alice Twin").Build()
		stash, err := model.NewCouponStash(testutil.Alice, twin)
		if err != nil {
			t.Fatal(err)
		}
		dup := model.NewManager(stash, model.DefaultUserPrefs())
		aliceName := testutil.Alice.Name()
		assertCommandFailure(t, NewEditCommand(testutil.SecondIndex, EditCouponDescriptor{Name: &aliceName}), dup, MessageDuplicateCoupon)
	})

	t.Run("invalid index unfiltered", func(t *testing.T) {
		outOfBound := core.MustIndex(len(m.FilteredCoupons()) + 1)
		assertCommandFailure(t, NewEditCommand(outOfBound, EditCouponDescriptor{Name: &name}), m, MessageInvalidCouponIndex)
	})

	t.Run("invalid index filtered", func(t *testing.T) {
		filtered := copyModel(t, m)
		showCouponAtIndex(t, filtered, testutil.FirstIndex)
		assertCommandFailure(t, NewEditCommand(testutil.SecondIndex, EditCouponDescriptor{Name: &other}), filtered, MessageInvalidCouponIndex)
	})

	t.Run("nothing to edit", func(t *testing.T) {
		assertCommandFailure(t, NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{}), m, MessageNotEdited)
	})
}

func TestEditEqual(t *testing.T) {
	name := testutil.Alice.Name()
	otherName := testutil.Benson.Name()
	cmd := NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{Name: &name})

	if !cmd.Equal(NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{Name: &name})) {
		t.Fatalf("same values should be equal")
	}
	if cmd.Equal(NewEditCommand(testutil.SecondIndex, EditCouponDescriptor{Name: &name})) {
		t.Fatalf("different index should differ")
	}
	if cmd.Equal(NewEditCommand(testutil.FirstIndex, EditCouponDescriptor{Name: &otherName})) {
		t.Fatalf("different descriptor should differ")
	}
	if cmd.Equal(&ClearCommand{}) {
		t.Fatalf("different types should differ")
	}
}
