package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/palrajin0126/admin-panel/internal/dto"
	"github.com/palrajin0126/admin-panel/internal/service"
	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
	"github.com/palrajin0126/admin-panel/pkg/response"
	"github.com/palrajin0126/admin-panel/pkg/utils"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	productService  service.ProductService
	cartService     service.CartService
	orderService    service.OrderService
	categoryService service.CategoryService
}

func CreateController(e *echo.Group, productService service.ProductService, cartService service.CartService, orderService service.OrderService, categoryService service.CategoryService, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		productService:  productService,
		cartService:     cartService,
		orderService:    orderService,
		categoryService: categoryService,
	}

	e.GET("/carts", c.GetCarts, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)

	e.POST("/products", c.AddProduct)
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)

	e.POST("/categories", c.AddCategory)
	e.GET("/categories", c.GetCategories)
	e.PUT("/categories/:id", c.UpdateCategory)
	e.DELETE("/categories/:id", c.DeleteCategory)
}

func (c *Controller) GetCarts(e echo.Context) error {
	userID, _ := utils.ExtractTokenUser(e)
	log.Ctx(e.Request().Context()).Info().Str("userID", userID).Msg("admin cart listing requested")

	resp, err := c.cartService.GetCarts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved carts", resp)
}

func (c *Controller) GetOrders(e echo.Context) error {
	resp, err := c.orderService.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved orders", resp)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	resp, err := c.productService.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product added successfully", resp)
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.productService.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")
	resp, err := c.productService.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	payload.ID = id
	resp, err := c.productService.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product updated successfully", resp)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	err := c.productService.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product deleted successfully", nil)
}

func (c *Controller) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	id, err := c.categoryService.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category added successfully", map[string]string{"id": id})
}

func (c *Controller) GetCategories(e echo.Context) error {
	resp, err := c.categoryService.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) UpdateCategory(e echo.Context) error {
	id := e.Param("id")
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
	}

	payload.ID = id
	err = c.categoryService.UpdateCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category updated successfully", nil)
}

func (c *Controller) DeleteCategory(e echo.Context) error {
	id := e.Param("id")
	err := c.categoryService.DeleteCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category deleted successfully", nil)
}
