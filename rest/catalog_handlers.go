package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unrot/di"
)

func registerCatalogRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	books := e.Group("/books")
	books.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, container.CatalogUsecase.BookCategories())
	})
	books.GET("", handleListBooks(container))
	books.GET("/", handleListBooks(container))
	books.GET("/:id", handleGetBook(container))

	math := e.Group("/math")
	math.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, container.CatalogUsecase.MathCategories())
	})
	math.GET("/topics", func(c echo.Context) error {
		return c.JSON(http.StatusOK, container.CatalogUsecase.MathTopics())
	})
	math.GET("/topics/:id", handleGetMathTopic(container))
	math.GET("/random", handleRandomMathTopic(container))
}

func handleListBooks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, container.CatalogUsecase.Books(c.QueryParam("category")))
	}
}

func handleGetBook(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		book, err := container.CatalogUsecase.Book(c.Param("id"))
		if err != nil {
			return handleError(c, err, "get_book")
		}
		return c.JSON(http.StatusOK, book)
	}
}

func handleGetMathTopic(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic, err := container.CatalogUsecase.MathTopic(c.Param("id"))
		if err != nil {
			return handleError(c, err, "get_math_topic")
		}
		return c.JSON(http.StatusOK, topic)
	}
}

func handleRandomMathTopic(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic, err := container.CatalogUsecase.RandomMathTopic()
		if err != nil {
			return handleError(c, err, "random_math_topic")
		}
		return c.JSON(http.StatusOK, topic)
	}
}
