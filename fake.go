package woocommerce

import "github.com/loaidev64/woocommerce-go/internal/faker"

// Shared synthesized building blocks used by the per-entity fake
// constructors. These run only on the fake branch of an operation.

func fakeTime() *DateTime {
	return ptr(NewDateTime(faker.PastDate()))
}

func fakeMetaData() MetaData {
	return MetaData{
		ID:    ptr(faker.ID()),
		Key:   ptr(faker.Word()),
		Value: faker.Word(),
	}
}
