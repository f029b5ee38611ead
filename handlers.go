package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/ledger"
	"github.com/mmdatafocus/bizbooks_backend/models"
	"github.com/mmdatafocus/bizbooks_backend/utils"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := models.FindUserByUsername(c.Request.Context(), input.Username)
	if err != nil || utils.ComparePassword(user.Password, input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.JwtGenerate(user.ID, user.BusinessId, user.Role)
	if err != nil {
		config.LogError(config.GetLogger(), "main", "loginHandler", "generate token", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "business_id": user.BusinessId})
}

/* statement endpoints */

// statementResponse is the rendered ledger plus the scope metadata the
// engine itself never sees.
type statementResponse struct {
	OpeningBalance string             `json:"opening_balance"`
	ClosingBalance string             `json:"closing_balance"`
	Entries        []ledger.Entry     `json:"entries"`
	Diagnostics    ledger.Diagnostics `json:"diagnostics"`
	DegradedView   bool               `json:"degraded_view"`
}

func parseStatementQuery(c *gin.Context) (ledger.Query, error) {
	var q ledger.Query
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(ledger.DateLayout, from)
		if err != nil {
			return q, err
		}
		q.FromDate = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(ledger.DateLayout, to)
		if err != nil {
			return q, err
		}
		q.ToDate = &t
	}
	q.Search = c.Query("search")
	return q, nil
}

// renderStatement runs one statement request end to end. The source fetch
// goes first because it is where scope resolution (and the membership
// check) lives; the entity whose base balance seeds the ledger is then
// loaded under the resolved scope, never under the raw request scope.
func renderStatement(c *gin.Context, scope string, entityId int,
	fetch func(ctx context.Context) (*models.LedgerSourceSet, error),
	loadAccount func(ctx context.Context) (ledger.Account, error)) {

	q, err := parseStatementQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	businessId, _ := utils.GetBusinessIdFromContext(ctx)
	userId, _ := utils.GetUserIdFromContext(ctx)
	cacheKey := utils.StatementCacheKey(businessId, userId, scope, entityId, c.Query("from"), c.Query("to"), q.Search)
	var cached statementResponse
	if hit, _ := config.GetRedisObject(cacheKey, &cached); hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	sourceSet, err := fetch(ctx)
	if err != nil {
		respondLedgerError(c, scope, err)
		return
	}

	scopedCtx := utils.SetBusinessIdInContext(ctx, sourceSet.Scope.BusinessId)
	account, err := loadAccount(scopedCtx)
	if err != nil {
		respondLedgerError(c, scope, err)
		return
	}

	result, err := ledger.BuildLedger(sourceSet.Sources, account, q)
	if err != nil {
		respondLedgerError(c, scope, err)
		return
	}

	resp := statementResponse{
		OpeningBalance: result.OpeningBalance.String(),
		ClosingBalance: result.ClosingBalance.String(),
		Entries:        result.Entries,
		Diagnostics:    result.Diagnostics,
		DegradedView:   sourceSet.Scope.Degraded,
	}
	if err := config.SetRedisObject(cacheKey, resp, utils.GetStatementCacheLifespan()); err != nil {
		config.LogError(config.GetLogger(), "main", "renderStatement", "cache statement", cacheKey, err)
	}
	c.JSON(http.StatusOK, resp)
}

func respondLedgerError(c *gin.Context, scope string, err error) {
	switch err {
	case ledger.ErrInvalidDateRange:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case utils.ErrorRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case utils.ErrorPermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		correlationId, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		config.LogError(config.GetLogger(), "main", "renderStatement", scope,
			gin.H{"correlation_id": correlationId}, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ledger build failed"})
	}
}

// respondMutationError maps model-layer errors on the CRUD paths. Scope
// denials must not collapse into a generic 400: the membership check is
// the tenant boundary.
func respondMutationError(c *gin.Context, err error) {
	switch err {
	case utils.ErrorRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case utils.ErrorPermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func customerLedgerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	renderStatement(c, "customer", id,
		func(ctx context.Context) (*models.LedgerSourceSet, error) {
			return models.FetchCustomerLedgerSources(ctx, id)
		},
		func(ctx context.Context) (ledger.Account, error) {
			customer, err := models.GetCustomer(ctx, id)
			if err != nil {
				return ledger.Account{}, err
			}
			return ledger.Account{
				ID:          strconv.Itoa(customer.ID),
				Name:        customer.Name,
				BaseBalance: customer.PreviousBalance,
			}, nil
		})
}

func supplierLedgerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplier id"})
		return
	}
	renderStatement(c, "supplier", id,
		func(ctx context.Context) (*models.LedgerSourceSet, error) {
			return models.FetchSupplierLedgerSources(ctx, id)
		},
		func(ctx context.Context) (ledger.Account, error) {
			supplier, err := models.GetSupplier(ctx, id)
			if err != nil {
				return ledger.Account{}, err
			}
			return ledger.Account{
				ID:          strconv.Itoa(supplier.ID),
				Name:        supplier.Name,
				BaseBalance: supplier.PreviousBalance,
			}, nil
		})
}

func accountLedgerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	renderStatement(c, "account", id,
		func(ctx context.Context) (*models.LedgerSourceSet, error) {
			return models.FetchAccountLedgerSources(ctx, id)
		},
		func(ctx context.Context) (ledger.Account, error) {
			moneyAccount, err := models.GetMoneyAccount(ctx, id)
			if err != nil {
				return ledger.Account{}, err
			}
			return ledger.Account{
				ID:          strconv.Itoa(moneyAccount.ID),
				Name:        moneyAccount.AccountName,
				BaseBalance: moneyAccount.OpeningBalance,
			}, nil
		})
}

/* customer CRUD */

func listCustomersHandler(c *gin.Context) {
	customers, err := models.ListCustomers(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondLedgerError(c, "customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func createCustomerHandler(c *gin.Context) {
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := models.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func getCustomerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := models.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondLedgerError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func updateCustomerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	var input models.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := models.UpdateCustomer(c.Request.Context(), id, &input)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func deleteCustomerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := models.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

/* suppliers */

func listSuppliersHandler(c *gin.Context) {
	suppliers, err := models.ListSuppliers(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondLedgerError(c, "suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

/* money accounts */

func listMoneyAccountsHandler(c *gin.Context) {
	accounts, err := models.ListMoneyAccounts(c.Request.Context())
	if err != nil {
		respondLedgerError(c, "accounts", err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func createMoneyAccountHandler(c *gin.Context) {
	var input models.NewMoneyAccount
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := models.CreateMoneyAccount(c.Request.Context(), &input)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func getMoneyAccountHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	account, err := models.GetMoneyAccount(c.Request.Context(), id)
	if err != nil {
		respondLedgerError(c, "account", err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func updateMoneyAccountHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}
	var input models.NewMoneyAccount
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := models.UpdateMoneyAccount(c.Request.Context(), id, &input)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

/* delivery challans */

func listDeliveryChallansHandler(c *gin.Context) {
	customerId, _ := strconv.Atoi(c.Query("customer_id"))
	challans, err := models.ListDeliveryChallans(c.Request.Context(), customerId)
	if err != nil {
		respondLedgerError(c, "challans", err)
		return
	}
	c.JSON(http.StatusOK, challans)
}

func createDeliveryChallanHandler(c *gin.Context) {
	var input models.NewDeliveryChallan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	challan, err := models.CreateDeliveryChallan(c.Request.Context(), &input)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, challan)
}

func getDeliveryChallanHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challan id"})
		return
	}
	challan, err := models.GetDeliveryChallan(c.Request.Context(), id)
	if err != nil {
		respondLedgerError(c, "challan", err)
		return
	}
	c.JSON(http.StatusOK, challan)
}

func updateDeliveryChallanStatusHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challan id"})
		return
	}
	var input struct {
		Status models.ChallanStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	challan, err := models.UpdateDeliveryChallanStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, challan)
}
