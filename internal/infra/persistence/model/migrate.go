package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&RoleModel{},
		&IDTypeModel{},
		&BrandModel{},
		&SupplierModel{},
		&ProductTypeModel{},
		&AddressModel{},
		&UserModel{},
		&ProductModel{},
		&ProductImageModel{},
		&OrderModel{},
		&ProductOrderModel{},
	}
}
