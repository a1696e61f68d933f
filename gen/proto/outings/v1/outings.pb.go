// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: outings/v1/outings.proto

package outingsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Outing struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	TotalReceipts int32                  `protobuf:"varint,4,opt,name=total_receipts,json=totalReceipts,proto3" json:"total_receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Outing) Reset() {
	*x = Outing{}
	mi := &file_outings_v1_outings_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Outing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Outing) ProtoMessage() {}

func (x *Outing) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Outing.ProtoReflect.Descriptor instead.
func (*Outing) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{0}
}

func (x *Outing) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Outing) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Outing) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Outing) GetTotalReceipts() int32 {
	if x != nil {
		return x.TotalReceipts
	}
	return 0
}

type CreateOutingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOutingRequest) Reset() {
	*x = CreateOutingRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOutingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOutingRequest) ProtoMessage() {}

func (x *CreateOutingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOutingRequest.ProtoReflect.Descriptor instead.
func (*CreateOutingRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{1}
}

func (x *CreateOutingRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateOutingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outing        *Outing                `protobuf:"bytes,1,opt,name=outing,proto3" json:"outing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOutingResponse) Reset() {
	*x = CreateOutingResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOutingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOutingResponse) ProtoMessage() {}

func (x *CreateOutingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOutingResponse.ProtoReflect.Descriptor instead.
func (*CreateOutingResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{2}
}

func (x *CreateOutingResponse) GetOuting() *Outing {
	if x != nil {
		return x.Outing
	}
	return nil
}

type ListOutingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOutingsRequest) Reset() {
	*x = ListOutingsRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOutingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOutingsRequest) ProtoMessage() {}

func (x *ListOutingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOutingsRequest.ProtoReflect.Descriptor instead.
func (*ListOutingsRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{3}
}

type ListOutingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outings       []*Outing              `protobuf:"bytes,1,rep,name=outings,proto3" json:"outings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOutingsResponse) Reset() {
	*x = ListOutingsResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOutingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOutingsResponse) ProtoMessage() {}

func (x *ListOutingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOutingsResponse.ProtoReflect.Descriptor instead.
func (*ListOutingsResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{4}
}

func (x *ListOutingsResponse) GetOutings() []*Outing {
	if x != nil {
		return x.Outings
	}
	return nil
}

type DeleteOutingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutingId      string                 `protobuf:"bytes,1,opt,name=outing_id,json=outingId,proto3" json:"outing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteOutingRequest) Reset() {
	*x = DeleteOutingRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteOutingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteOutingRequest) ProtoMessage() {}

func (x *DeleteOutingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteOutingRequest.ProtoReflect.Descriptor instead.
func (*DeleteOutingRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteOutingRequest) GetOutingId() string {
	if x != nil {
		return x.OutingId
	}
	return ""
}

type DeleteOutingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteOutingResponse) Reset() {
	*x = DeleteOutingResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteOutingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteOutingResponse) ProtoMessage() {}

func (x *DeleteOutingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteOutingResponse.ProtoReflect.Descriptor instead.
func (*DeleteOutingResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{6}
}

type OrderItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         float64                `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderItem) Reset() {
	*x = OrderItem{}
	mi := &file_outings_v1_outings_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItem) ProtoMessage() {}

func (x *OrderItem) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItem.ProtoReflect.Descriptor instead.
func (*OrderItem) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{7}
}

func (x *OrderItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *OrderItem) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type OtherFee struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         float64                `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OtherFee) Reset() {
	*x = OtherFee{}
	mi := &file_outings_v1_outings_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OtherFee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OtherFee) ProtoMessage() {}

func (x *OtherFee) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OtherFee.ProtoReflect.Descriptor instead.
func (*OtherFee) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{8}
}

func (x *OtherFee) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *OtherFee) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type PaymentInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Method        string                 `protobuf:"bytes,1,opt,name=method,proto3" json:"method,omitempty"`
	AmountPaid    float64                `protobuf:"fixed64,2,opt,name=amount_paid,json=amountPaid,proto3" json:"amount_paid,omitempty"`
	Tip           float64                `protobuf:"fixed64,3,opt,name=tip,proto3" json:"tip,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PaymentInfo) Reset() {
	*x = PaymentInfo{}
	mi := &file_outings_v1_outings_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PaymentInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentInfo) ProtoMessage() {}

func (x *PaymentInfo) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentInfo.ProtoReflect.Descriptor instead.
func (*PaymentInfo) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{9}
}

func (x *PaymentInfo) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *PaymentInfo) GetAmountPaid() float64 {
	if x != nil {
		return x.AmountPaid
	}
	return 0
}

func (x *PaymentInfo) GetTip() float64 {
	if x != nil {
		return x.Tip
	}
	return 0
}

type Receipt struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OutingId   string                 `protobuf:"bytes,2,opt,name=outing_id,json=outingId,proto3" json:"outing_id,omitempty"`
	Restaurant string                 `protobuf:"bytes,3,opt,name=restaurant,proto3" json:"restaurant,omitempty"`
	Address    string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	// RFC 3339, empty when the extracted date could not be parsed
	Opened        string       `protobuf:"bytes,5,opt,name=opened,proto3" json:"opened,omitempty"`
	OrderNumber   string       `protobuf:"bytes,6,opt,name=order_number,json=orderNumber,proto3" json:"order_number,omitempty"`
	OrderType     string       `protobuf:"bytes,7,opt,name=order_type,json=orderType,proto3" json:"order_type,omitempty"`
	Table         string       `protobuf:"bytes,8,opt,name=table,proto3" json:"table,omitempty"`
	Server        string       `protobuf:"bytes,9,opt,name=server,proto3" json:"server,omitempty"`
	Items         []*OrderItem `protobuf:"bytes,10,rep,name=items,proto3" json:"items,omitempty"`
	Subtotal      float64      `protobuf:"fixed64,11,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	SalesTax      float64      `protobuf:"fixed64,12,opt,name=sales_tax,json=salesTax,proto3" json:"sales_tax,omitempty"`
	Total         float64      `protobuf:"fixed64,13,opt,name=total,proto3" json:"total,omitempty"`
	Payment       *PaymentInfo `protobuf:"bytes,14,opt,name=payment,proto3" json:"payment,omitempty"`
	Copy          string       `protobuf:"bytes,15,opt,name=copy,proto3" json:"copy,omitempty"`
	OtherFees     []*OtherFee  `protobuf:"bytes,16,rep,name=other_fees,json=otherFees,proto3" json:"other_fees,omitempty"`
	ImageHash     string       `protobuf:"bytes,17,opt,name=image_hash,json=imageHash,proto3" json:"image_hash,omitempty"`
	ObjectKey     string       `protobuf:"bytes,18,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	CreatedAt     string       `protobuf:"bytes,19,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_outings_v1_outings_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{10}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetOutingId() string {
	if x != nil {
		return x.OutingId
	}
	return ""
}

func (x *Receipt) GetRestaurant() string {
	if x != nil {
		return x.Restaurant
	}
	return ""
}

func (x *Receipt) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Receipt) GetOpened() string {
	if x != nil {
		return x.Opened
	}
	return ""
}

func (x *Receipt) GetOrderNumber() string {
	if x != nil {
		return x.OrderNumber
	}
	return ""
}

func (x *Receipt) GetOrderType() string {
	if x != nil {
		return x.OrderType
	}
	return ""
}

func (x *Receipt) GetTable() string {
	if x != nil {
		return x.Table
	}
	return ""
}

func (x *Receipt) GetServer() string {
	if x != nil {
		return x.Server
	}
	return ""
}

func (x *Receipt) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Receipt) GetSubtotal() float64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

func (x *Receipt) GetSalesTax() float64 {
	if x != nil {
		return x.SalesTax
	}
	return 0
}

func (x *Receipt) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Receipt) GetPayment() *PaymentInfo {
	if x != nil {
		return x.Payment
	}
	return nil
}

func (x *Receipt) GetCopy() string {
	if x != nil {
		return x.Copy
	}
	return ""
}

func (x *Receipt) GetOtherFees() []*OtherFee {
	if x != nil {
		return x.OtherFees
	}
	return nil
}

func (x *Receipt) GetImageHash() string {
	if x != nil {
		return x.ImageHash
	}
	return ""
}

func (x *Receipt) GetObjectKey() string {
	if x != nil {
		return x.ObjectKey
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutingId      string                 `protobuf:"bytes,1,opt,name=outing_id,json=outingId,proto3" json:"outing_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptRequest) Reset() {
	*x = UploadReceiptRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptRequest) ProtoMessage() {}

func (x *UploadReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptRequest.ProtoReflect.Descriptor instead.
func (*UploadReceiptRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{11}
}

func (x *UploadReceiptRequest) GetOutingId() string {
	if x != nil {
		return x.OutingId
	}
	return ""
}

func (x *UploadReceiptRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadReceiptRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadReceiptResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Receipt *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	// true when the image was already processed and no upstream call ran
	Existing      bool `protobuf:"varint,2,opt,name=existing,proto3" json:"existing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptResponse) Reset() {
	*x = UploadReceiptResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptResponse) ProtoMessage() {}

func (x *UploadReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptResponse.ProtoReflect.Descriptor instead.
func (*UploadReceiptResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{12}
}

func (x *UploadReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *UploadReceiptResponse) GetExisting() bool {
	if x != nil {
		return x.Existing
	}
	return false
}

type GetReceiptRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	// overrides the server's default presign TTL when > 0
	UrlTtlSeconds int64 `protobuf:"varint,2,opt,name=url_ttl_seconds,json=urlTtlSeconds,proto3" json:"url_ttl_seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{13}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *GetReceiptRequest) GetUrlTtlSeconds() int64 {
	if x != nil {
		return x.UrlTtlSeconds
	}
	return 0
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	ImageUrl      string                 `protobuf:"bytes,2,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{14}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *GetReceiptResponse) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

type ReceiptSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Restaurant    string                 `protobuf:"bytes,2,opt,name=restaurant,proto3" json:"restaurant,omitempty"`
	ItemCount     int32                  `protobuf:"varint,3,opt,name=item_count,json=itemCount,proto3" json:"item_count,omitempty"`
	Total         float64                `protobuf:"fixed64,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptSummary) Reset() {
	*x = ReceiptSummary{}
	mi := &file_outings_v1_outings_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptSummary) ProtoMessage() {}

func (x *ReceiptSummary) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptSummary.ProtoReflect.Descriptor instead.
func (*ReceiptSummary) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{15}
}

func (x *ReceiptSummary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReceiptSummary) GetRestaurant() string {
	if x != nil {
		return x.Restaurant
	}
	return ""
}

func (x *ReceiptSummary) GetItemCount() int32 {
	if x != nil {
		return x.ItemCount
	}
	return 0
}

func (x *ReceiptSummary) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutingId      string                 `protobuf:"bytes,1,opt,name=outing_id,json=outingId,proto3" json:"outing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{16}
}

func (x *ListReceiptsRequest) GetOutingId() string {
	if x != nil {
		return x.OutingId
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*ReceiptSummary      `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{17}
}

func (x *ListReceiptsResponse) GetReceipts() []*ReceiptSummary {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportOutingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutingId      string                 `protobuf:"bytes,1,opt,name=outing_id,json=outingId,proto3" json:"outing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOutingRequest) Reset() {
	*x = ExportOutingRequest{}
	mi := &file_outings_v1_outings_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOutingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOutingRequest) ProtoMessage() {}

func (x *ExportOutingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOutingRequest.ProtoReflect.Descriptor instead.
func (*ExportOutingRequest) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{18}
}

func (x *ExportOutingRequest) GetOutingId() string {
	if x != nil {
		return x.OutingId
	}
	return ""
}

type ExportOutingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOutingResponse) Reset() {
	*x = ExportOutingResponse{}
	mi := &file_outings_v1_outings_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOutingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOutingResponse) ProtoMessage() {}

func (x *ExportOutingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_outings_v1_outings_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOutingResponse.ProtoReflect.Descriptor instead.
func (*ExportOutingResponse) Descriptor() ([]byte, []int) {
	return file_outings_v1_outings_proto_rawDescGZIP(), []int{19}
}

func (x *ExportOutingResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_outings_v1_outings_proto protoreflect.FileDescriptor

const file_outings_v1_outings_proto_rawDesc = "" +
	"\n" +
	"\x18outings/v1/outings.proto\x12\n" +
	"outings.v1\"r\n" +
	"\x06Outing\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12%\n" +
	"\x0etotal_receipts\x18\x04 \x01(\x05R\rtotalReceipts\")\n" +
	"\x13CreateOutingRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"B\n" +
	"\x14CreateOutingResponse\x12*\n" +
	"\x06outing\x18\x01 \x01(\v2\x12.outings.v1.OutingR\x06outing\"\x14\n" +
	"\x12ListOutingsRequest\"C\n" +
	"\x13ListOutingsResponse\x12,\n" +
	"\aoutings\x18\x01 \x03(\v2\x12.outings.v1.OutingR\aoutings\"2\n" +
	"\x13DeleteOutingRequest\x12\x1b\n" +
	"\touting_id\x18\x01 \x01(\tR\boutingId\"\x16\n" +
	"\x14DeleteOutingResponse\"Q\n" +
	"\tOrderItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\x01R\x05price\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\"4\n" +
	"\bOtherFee\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\x01R\x05price\"X\n" +
	"\vPaymentInfo\x12\x16\n" +
	"\x06method\x18\x01 \x01(\tR\x06method\x12\x1f\n" +
	"\vamount_paid\x18\x02 \x01(\x01R\n" +
	"amountPaid\x12\x10\n" +
	"\x03tip\x18\x03 \x01(\x01R\x03tip\"\xcd\x04\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\touting_id\x18\x02 \x01(\tR\boutingId\x12\x1e\n" +
	"\n" +
	"restaurant\x18\x03 \x01(\tR\n" +
	"restaurant\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x16\n" +
	"\x06opened\x18\x05 \x01(\tR\x06opened\x12!\n" +
	"\forder_number\x18\x06 \x01(\tR\vorderNumber\x12\x1d\n" +
	"\n" +
	"order_type\x18\a \x01(\tR\torderType\x12\x14\n" +
	"\x05table\x18\b \x01(\tR\x05table\x12\x16\n" +
	"\x06server\x18\t \x01(\tR\x06server\x12+\n" +
	"\x05items\x18\n" +
	" \x03(\v2\x15.outings.v1.OrderItemR\x05items\x12\x1a\n" +
	"\bsubtotal\x18\v \x01(\x01R\bsubtotal\x12\x1b\n" +
	"\tsales_tax\x18\f \x01(\x01R\bsalesTax\x12\x14\n" +
	"\x05total\x18\r \x01(\x01R\x05total\x121\n" +
	"\apayment\x18\x0e \x01(\v2\x17.outings.v1.PaymentInfoR\apayment\x12\x12\n" +
	"\x04copy\x18\x0f \x01(\tR\x04copy\x123\n" +
	"\n" +
	"other_fees\x18\x10 \x03(\v2\x14.outings.v1.OtherFeeR\totherFees\x12\x1d\n" +
	"\n" +
	"image_hash\x18\x11 \x01(\tR\timageHash\x12\x1d\n" +
	"\n" +
	"object_key\x18\x12 \x01(\tR\tobjectKey\x12\x1d\n" +
	"\n" +
	"created_at\x18\x13 \x01(\tR\tcreatedAt\"j\n" +
	"\x14UploadReceiptRequest\x12\x1b\n" +
	"\touting_id\x18\x01 \x01(\tR\boutingId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"b\n" +
	"\x15UploadReceiptResponse\x12-\n" +
	"\areceipt\x18\x01 \x01(\v2\x13.outings.v1.ReceiptR\areceipt\x12\x1a\n" +
	"\bexisting\x18\x02 \x01(\bR\bexisting\"Z\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12&\n" +
	"\x0furl_ttl_seconds\x18\x02 \x01(\x03R\rurlTtlSeconds\"`\n" +
	"\x12GetReceiptResponse\x12-\n" +
	"\areceipt\x18\x01 \x01(\v2\x13.outings.v1.ReceiptR\areceipt\x12\x1b\n" +
	"\timage_url\x18\x02 \x01(\tR\bimageUrl\"u\n" +
	"\x0eReceiptSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\n" +
	"restaurant\x18\x02 \x01(\tR\n" +
	"restaurant\x12\x1d\n" +
	"\n" +
	"item_count\x18\x03 \x01(\x05R\titemCount\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x01R\x05total\"2\n" +
	"\x13ListReceiptsRequest\x12\x1b\n" +
	"\touting_id\x18\x01 \x01(\tR\boutingId\"N\n" +
	"\x14ListReceiptsResponse\x126\n" +
	"\breceipts\x18\x01 \x03(\v2\x1a.outings.v1.ReceiptSummaryR\breceipts\"2\n" +
	"\x13ExportOutingRequest\x12\x1b\n" +
	"\touting_id\x18\x01 \x01(\tR\boutingId\"*\n" +
	"\x14ExportOutingResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xcf\x04\n" +
	"\x0eOutingsService\x12Q\n" +
	"\fCreateOuting\x12\x1f.outings.v1.CreateOutingRequest\x1a .outings.v1.CreateOutingResponse\x12N\n" +
	"\vListOutings\x12\x1e.outings.v1.ListOutingsRequest\x1a\x1f.outings.v1.ListOutingsResponse\x12Q\n" +
	"\fDeleteOuting\x12\x1f.outings.v1.DeleteOutingRequest\x1a .outings.v1.DeleteOutingResponse\x12T\n" +
	"\rUploadReceipt\x12 .outings.v1.UploadReceiptRequest\x1a!.outings.v1.UploadReceiptResponse\x12K\n" +
	"\n" +
	"GetReceipt\x12\x1d.outings.v1.GetReceiptRequest\x1a\x1e.outings.v1.GetReceiptResponse\x12Q\n" +
	"\fListReceipts\x12\x1f.outings.v1.ListReceiptsRequest\x1a .outings.v1.ListReceiptsResponse\x12Q\n" +
	"\fExportOuting\x12\x1f.outings.v1.ExportOutingRequest\x1a .outings.v1.ExportOutingResponseBCZAgithub.com/tabmate/outings-tracker/gen/proto/outings/v1;outingsv1b\x06proto3"

var (
	file_outings_v1_outings_proto_rawDescOnce sync.Once
	file_outings_v1_outings_proto_rawDescData []byte
)

func file_outings_v1_outings_proto_rawDescGZIP() []byte {
	file_outings_v1_outings_proto_rawDescOnce.Do(func() {
		file_outings_v1_outings_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_outings_v1_outings_proto_rawDesc), len(file_outings_v1_outings_proto_rawDesc)))
	})
	return file_outings_v1_outings_proto_rawDescData
}

var file_outings_v1_outings_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_outings_v1_outings_proto_goTypes = []any{
	(*Outing)(nil),                // 0: outings.v1.Outing
	(*CreateOutingRequest)(nil),   // 1: outings.v1.CreateOutingRequest
	(*CreateOutingResponse)(nil),  // 2: outings.v1.CreateOutingResponse
	(*ListOutingsRequest)(nil),    // 3: outings.v1.ListOutingsRequest
	(*ListOutingsResponse)(nil),   // 4: outings.v1.ListOutingsResponse
	(*DeleteOutingRequest)(nil),   // 5: outings.v1.DeleteOutingRequest
	(*DeleteOutingResponse)(nil),  // 6: outings.v1.DeleteOutingResponse
	(*OrderItem)(nil),             // 7: outings.v1.OrderItem
	(*OtherFee)(nil),              // 8: outings.v1.OtherFee
	(*PaymentInfo)(nil),           // 9: outings.v1.PaymentInfo
	(*Receipt)(nil),               // 10: outings.v1.Receipt
	(*UploadReceiptRequest)(nil),  // 11: outings.v1.UploadReceiptRequest
	(*UploadReceiptResponse)(nil), // 12: outings.v1.UploadReceiptResponse
	(*GetReceiptRequest)(nil),     // 13: outings.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),    // 14: outings.v1.GetReceiptResponse
	(*ReceiptSummary)(nil),        // 15: outings.v1.ReceiptSummary
	(*ListReceiptsRequest)(nil),   // 16: outings.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),  // 17: outings.v1.ListReceiptsResponse
	(*ExportOutingRequest)(nil),   // 18: outings.v1.ExportOutingRequest
	(*ExportOutingResponse)(nil),  // 19: outings.v1.ExportOutingResponse
}
var file_outings_v1_outings_proto_depIdxs = []int32{
	0,  // 0: outings.v1.CreateOutingResponse.outing:type_name -> outings.v1.Outing
	0,  // 1: outings.v1.ListOutingsResponse.outings:type_name -> outings.v1.Outing
	7,  // 2: outings.v1.Receipt.items:type_name -> outings.v1.OrderItem
	9,  // 3: outings.v1.Receipt.payment:type_name -> outings.v1.PaymentInfo
	8,  // 4: outings.v1.Receipt.other_fees:type_name -> outings.v1.OtherFee
	10, // 5: outings.v1.UploadReceiptResponse.receipt:type_name -> outings.v1.Receipt
	10, // 6: outings.v1.GetReceiptResponse.receipt:type_name -> outings.v1.Receipt
	15, // 7: outings.v1.ListReceiptsResponse.receipts:type_name -> outings.v1.ReceiptSummary
	1,  // 8: outings.v1.OutingsService.CreateOuting:input_type -> outings.v1.CreateOutingRequest
	3,  // 9: outings.v1.OutingsService.ListOutings:input_type -> outings.v1.ListOutingsRequest
	5,  // 10: outings.v1.OutingsService.DeleteOuting:input_type -> outings.v1.DeleteOutingRequest
	11, // 11: outings.v1.OutingsService.UploadReceipt:input_type -> outings.v1.UploadReceiptRequest
	13, // 12: outings.v1.OutingsService.GetReceipt:input_type -> outings.v1.GetReceiptRequest
	16, // 13: outings.v1.OutingsService.ListReceipts:input_type -> outings.v1.ListReceiptsRequest
	18, // 14: outings.v1.OutingsService.ExportOuting:input_type -> outings.v1.ExportOutingRequest
	2,  // 15: outings.v1.OutingsService.CreateOuting:output_type -> outings.v1.CreateOutingResponse
	4,  // 16: outings.v1.OutingsService.ListOutings:output_type -> outings.v1.ListOutingsResponse
	6,  // 17: outings.v1.OutingsService.DeleteOuting:output_type -> outings.v1.DeleteOutingResponse
	12, // 18: outings.v1.OutingsService.UploadReceipt:output_type -> outings.v1.UploadReceiptResponse
	14, // 19: outings.v1.OutingsService.GetReceipt:output_type -> outings.v1.GetReceiptResponse
	17, // 20: outings.v1.OutingsService.ListReceipts:output_type -> outings.v1.ListReceiptsResponse
	19, // 21: outings.v1.OutingsService.ExportOuting:output_type -> outings.v1.ExportOutingResponse
	15, // [15:22] is the sub-list for method output_type
	8,  // [8:15] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_outings_v1_outings_proto_init() }
func file_outings_v1_outings_proto_init() {
	if File_outings_v1_outings_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_outings_v1_outings_proto_rawDesc), len(file_outings_v1_outings_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_outings_v1_outings_proto_goTypes,
		DependencyIndexes: file_outings_v1_outings_proto_depIdxs,
		MessageInfos:      file_outings_v1_outings_proto_msgTypes,
	}.Build()
	File_outings_v1_outings_proto = out.File
	file_outings_v1_outings_proto_goTypes = nil
	file_outings_v1_outings_proto_depIdxs = nil
}
