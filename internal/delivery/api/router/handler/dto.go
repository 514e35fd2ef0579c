package handler

import (
	"time"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
)

// CatalogItemDTO is a brand, supplier, product type or identification type.
type CatalogItemDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCatalogItemDTO(item *entity.CatalogItem) *CatalogItemDTO {
	if item == nil {
		return nil
	}

	return &CatalogItemDTO{ID: item.ID, Name: item.Name}
}

func toCatalogItemDTOs(items []*entity.CatalogItem) []*CatalogItemDTO {
	dtos := make([]*CatalogItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toCatalogItemDTO(item))
	}

	return dtos
}

type RoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toRoleDTOs(roles []*entity.Role) []RoleDTO {
	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, RoleDTO{ID: role.ID, Name: role.Name})
	}

	return dtos
}

type AddressDTO struct {
	ID         int64  `json:"id"`
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
}

func toAddressDTO(address *entity.Address) *AddressDTO {
	if address == nil {
		return nil
	}

	return &AddressDTO{
		ID:         address.ID,
		PostalCode: address.PostalCode,
		Street:     address.Street,
		Number:     address.Number,
	}
}

func toAddressDTOs(addresses []*entity.Address) []*AddressDTO {
	dtos := make([]*AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		dtos = append(dtos, toAddressDTO(address))
	}

	return dtos
}

// UserDTO is a user without credentials.
type UserDTO struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	IDType    *CatalogItemDTO `json:"idType"`
	IDNumber  string          `json:"idNumber"`
	Method    string          `json:"method"`
	IsActive  bool            `json:"isActive"`
	Roles     []RoleDTO       `json:"roles"`
	Addresses []*AddressDTO   `json:"address"`
}

func toUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	dto := &UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		IDType:    toCatalogItemDTO(user.IDType),
		IDNumber:  user.IDNumber,
		Method:    user.Method.String(),
		IsActive:  user.IsActive,
		Roles:     make([]RoleDTO, 0, len(user.Roles)),
		Addresses: make([]*AddressDTO, 0, len(user.Addresses)),
	}
	for _, role := range user.Roles {
		dto.Roles = append(dto.Roles, RoleDTO{ID: role.ID, Name: role.Name})
	}
	for i := range user.Addresses {
		dto.Addresses = append(dto.Addresses, toAddressDTO(&user.Addresses[i]))
	}

	return dto
}

func toUserDTOs(users []*entity.User) []*UserDTO {
	dtos := make([]*UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, toUserDTO(user))
	}

	return dtos
}

type ProductImageDTO struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"productId"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toProductImageDTO(image *entity.ProductImage) *ProductImageDTO {
	return &ProductImageDTO{
		ID:           image.ID,
		ProductID:    image.ProductID,
		URL:          image.URL,
		ThumbnailURL: image.ThumbnailURL,
		CreatedAt:    image.CreatedAt,
	}
}

func toProductImageDTOs(images []*entity.ProductImage) []*ProductImageDTO {
	dtos := make([]*ProductImageDTO, 0, len(images))
	for _, image := range images {
		dtos = append(dtos, toProductImageDTO(image))
	}

	return dtos
}

type ProductDTO struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Cost        float64            `json:"cost"`
	Stock       int                `json:"stock"`
	IsActive    bool               `json:"isActive"`
	Image       string             `json:"image"`
	Brand       *CatalogItemDTO    `json:"brand"`
	Supplier    *CatalogItemDTO    `json:"supplier"`
	Type        *CatalogItemDTO    `json:"type"`
	Images      []*ProductImageDTO `json:"images"`
}

func toProductDTO(product *entity.Product) *ProductDTO {
	if product == nil {
		return nil
	}

	dto := &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Cost:        product.Cost,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		Image:       product.Image,
		Brand:       toCatalogItemDTO(product.Brand),
		Supplier:    toCatalogItemDTO(product.Supplier),
		Type:        toCatalogItemDTO(product.Type),
		Images:      make([]*ProductImageDTO, 0, len(product.Images)),
	}
	for i := range product.Images {
		dto.Images = append(dto.Images, toProductImageDTO(&product.Images[i]))
	}

	return dto
}

func toProductDTOs(products []*entity.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toProductDTO(product))
	}

	return dtos
}

type SearchResultDTO struct {
	Total    int64         `json:"total"`
	Products []*ProductDTO `json:"products"`
}

func toSearchResultDTO(result *service.ProductSearchResult) *SearchResultDTO {
	return &SearchResultDTO{Total: result.Total, Products: toProductDTOs(result.Products)}
}

type OrderItemDTO struct {
	ID       int64       `json:"id"`
	OrderID  int64       `json:"orderId"`
	Product  *ProductDTO `json:"product"`
	Quantity int         `json:"quantity"`
}

// OrderDTO is an order with its buyer, destination and lines.
type OrderDTO struct {
	ID            int64           `json:"id"`
	User          *UserDTO        `json:"user"`
	Destination   *AddressDTO     `json:"destination"`
	PaymentID     int64           `json:"paymentId"`
	PaymentMethod string          `json:"paymentMethod"`
	DateCreated   time.Time       `json:"dateCreated"`
	Items         []*OrderItemDTO `json:"items"`
	NetPrice      float64         `json:"netPrice"`
	IVA           float64         `json:"IVA"`
	Total         float64         `json:"total"`
	Profit        float64         `json:"profit"`
}

func toOrderDTO(order *entity.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:            order.ID,
		User:          toUserDTO(order.User),
		Destination:   toAddressDTO(order.Address),
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		DateCreated:   order.CreatedAt,
		Items:         make([]*OrderItemDTO, 0, len(order.Lines)),
		NetPrice:      order.NetPrice,
		IVA:           order.IVA,
		Total:         order.Total,
		Profit:        order.Profit,
	}
	for _, line := range order.Lines {
		dto.Items = append(dto.Items, &OrderItemDTO{
			ID:       line.ID,
			OrderID:  line.OrderID,
			Product:  toProductDTO(line.Product),
			Quantity: line.Quantity,
		})
	}

	return dto
}

func toOrderDTOs(orders []*entity.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toOrderDTO(order))
	}

	return dtos
}

// TokenPayloadDTO is the session payload exposed by the status endpoint.
type TokenPayloadDTO struct {
	ID     int64     `json:"id"`
	Method string    `json:"method"`
	Roles  []RoleDTO `json:"roles"`
}

func toTokenPayloadDTO(payload *entity.TokenPayload) *TokenPayloadDTO {
	if payload == nil {
		return nil
	}

	dto := &TokenPayloadDTO{ID: payload.ID, Method: payload.Method.String(), Roles: make([]RoleDTO, 0, len(payload.Roles))}
	for _, role := range payload.Roles {
		dto.Roles = append(dto.Roles, RoleDTO{ID: role.ID, Name: role.Name})
	}

	return dto
}

type PreferenceDTO struct {
	ID        string `json:"id"`
	InitPoint string `json:"initPoint"`
}
