// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptImageQuery is the builder for querying ReceiptImage entities.
type ReceiptImageQuery struct {
	config
	ctx         *QueryContext
	order       []receiptimage.OrderOption
	inters      []Interceptor
	predicates  []predicate.ReceiptImage
	withOuting  *OutingQuery
	withReceipt *ReceiptQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReceiptImageQuery builder.
func (_q *ReceiptImageQuery) Where(ps ...predicate.ReceiptImage) *ReceiptImageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReceiptImageQuery) Limit(limit int) *ReceiptImageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReceiptImageQuery) Offset(offset int) *ReceiptImageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReceiptImageQuery) Unique(unique bool) *ReceiptImageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReceiptImageQuery) Order(o ...receiptimage.OrderOption) *ReceiptImageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOuting chains the current query on the "outing" edge.
func (_q *ReceiptImageQuery) QueryOuting() *OutingQuery {
	query := (&OutingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptimage.Table, receiptimage.FieldID, selector),
			sqlgraph.To(outing.Table, outing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptimage.OutingTable, receiptimage.OutingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReceipt chains the current query on the "receipt" edge.
func (_q *ReceiptImageQuery) QueryReceipt() *ReceiptQuery {
	query := (&ReceiptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptimage.Table, receiptimage.FieldID, selector),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, receiptimage.ReceiptTable, receiptimage.ReceiptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReceiptImage entity from the query.
// Returns a *NotFoundError when no ReceiptImage was found.
func (_q *ReceiptImageQuery) First(ctx context.Context) (*ReceiptImage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{receiptimage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReceiptImageQuery) FirstX(ctx context.Context) *ReceiptImage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReceiptImage ID from the query.
// Returns a *NotFoundError when no ReceiptImage ID was found.
func (_q *ReceiptImageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{receiptimage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReceiptImageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReceiptImage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReceiptImage entity is found.
// Returns a *NotFoundError when no ReceiptImage entities are found.
func (_q *ReceiptImageQuery) Only(ctx context.Context) (*ReceiptImage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{receiptimage.Label}
	default:
		return nil, &NotSingularError{receiptimage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReceiptImageQuery) OnlyX(ctx context.Context) *ReceiptImage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReceiptImage ID in the query.
// Returns a *NotSingularError when more than one ReceiptImage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReceiptImageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{receiptimage.Label}
	default:
		err = &NotSingularError{receiptimage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReceiptImageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReceiptImages.
func (_q *ReceiptImageQuery) All(ctx context.Context) ([]*ReceiptImage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReceiptImage, *ReceiptImageQuery]()
	return withInterceptors[[]*ReceiptImage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReceiptImageQuery) AllX(ctx context.Context) []*ReceiptImage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReceiptImage IDs.
func (_q *ReceiptImageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(receiptimage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReceiptImageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReceiptImageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReceiptImageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReceiptImageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReceiptImageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ReceiptImageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReceiptImageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReceiptImageQuery) Clone() *ReceiptImageQuery {
	if _q == nil {
		return nil
	}
	return &ReceiptImageQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]receiptimage.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ReceiptImage{}, _q.predicates...),
		withOuting:  _q.withOuting.Clone(),
		withReceipt: _q.withReceipt.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOuting tells the query-builder to eager-load the nodes that are connected to
// the "outing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReceiptImageQuery) WithOuting(opts ...func(*OutingQuery)) *ReceiptImageQuery {
	query := (&OutingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOuting = query
	return _q
}

// WithReceipt tells the query-builder to eager-load the nodes that are connected to
// the "receipt" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReceiptImageQuery) WithReceipt(opts ...func(*ReceiptQuery)) *ReceiptImageQuery {
	query := (&ReceiptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReceipt = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OutingID uuid.UUID `json:"outing_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReceiptImage.Query().
//		GroupBy(receiptimage.FieldOutingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReceiptImageQuery) GroupBy(field string, fields ...string) *ReceiptImageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReceiptImageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = receiptimage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OutingID uuid.UUID `json:"outing_id,omitempty"`
//	}
//
//	client.ReceiptImage.Query().
//		Select(receiptimage.FieldOutingID).
//		Scan(ctx, &v)
func (_q *ReceiptImageQuery) Select(fields ...string) *ReceiptImageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReceiptImageSelect{ReceiptImageQuery: _q}
	sbuild.label = receiptimage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReceiptImageSelect configured with the given aggregations.
func (_q *ReceiptImageQuery) Aggregate(fns ...AggregateFunc) *ReceiptImageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReceiptImageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !receiptimage.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ReceiptImageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReceiptImage, error) {
	var (
		nodes       = []*ReceiptImage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withOuting != nil,
			_q.withReceipt != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReceiptImage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReceiptImage{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOuting; query != nil {
		if err := _q.loadOuting(ctx, query, nodes, nil,
			func(n *ReceiptImage, e *Outing) { n.Edges.Outing = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReceipt; query != nil {
		if err := _q.loadReceipt(ctx, query, nodes, nil,
			func(n *ReceiptImage, e *Receipt) { n.Edges.Receipt = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReceiptImageQuery) loadOuting(ctx context.Context, query *OutingQuery, nodes []*ReceiptImage, init func(*ReceiptImage), assign func(*ReceiptImage, *Outing)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReceiptImage)
	for i := range nodes {
		fk := nodes[i].OutingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(outing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "outing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ReceiptImageQuery) loadReceipt(ctx context.Context, query *ReceiptQuery, nodes []*ReceiptImage, init func(*ReceiptImage), assign func(*ReceiptImage, *Receipt)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ReceiptImage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	query.withFKs = true
	query.Where(predicate.Receipt(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(receiptimage.ReceiptColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.receipt_image_receipt
		if fk == nil {
			return fmt.Errorf(`foreign-key "receipt_image_receipt" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "receipt_image_receipt" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ReceiptImageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReceiptImageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(receiptimage.Table, receiptimage.Columns, sqlgraph.NewFieldSpec(receiptimage.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptimage.FieldID)
		for i := range fields {
			if fields[i] != receiptimage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOuting != nil {
			_spec.Node.AddColumnOnce(receiptimage.FieldOutingID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ReceiptImageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(receiptimage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = receiptimage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReceiptImageGroupBy is the group-by builder for ReceiptImage entities.
type ReceiptImageGroupBy struct {
	selector
	build *ReceiptImageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReceiptImageGroupBy) Aggregate(fns ...AggregateFunc) *ReceiptImageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReceiptImageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReceiptImageQuery, *ReceiptImageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReceiptImageGroupBy) sqlScan(ctx context.Context, root *ReceiptImageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReceiptImageSelect is the builder for selecting fields of ReceiptImage entities.
type ReceiptImageSelect struct {
	*ReceiptImageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReceiptImageSelect) Aggregate(fns ...AggregateFunc) *ReceiptImageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReceiptImageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReceiptImageQuery, *ReceiptImageSelect](ctx, _s.ReceiptImageQuery, _s, _s.inters, v)
}

func (_s *ReceiptImageSelect) sqlScan(ctx context.Context, root *ReceiptImageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
