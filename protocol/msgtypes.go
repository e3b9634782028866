package protocol

// MsgType values (tag 35) known to the default directory.
const (
	MsgTypeHeartbeat                               = "0"
	MsgTypeTestRequest                             = "1"
	MsgTypeResendRequest                           = "2"
	MsgTypeReject                                  = "3"
	MsgTypeSequenceReset                           = "4"
	MsgTypeLogout                                  = "5"
	MsgTypeIOI                                     = "6"
	MsgTypeAdvertisement                           = "7"
	MsgTypeExecutionReport                         = "8"
	MsgTypeOrderCancelReject                       = "9"
	MsgTypeLogon                                   = "A"
	MsgTypeNews                                    = "B"
	MsgTypeEmail                                   = "C"
	MsgTypeNewOrderSingle                          = "D"
	MsgTypeNewOrderList                            = "E"
	MsgTypeOrderCancelRequest                      = "F"
	MsgTypeOrderCancelReplaceRequest               = "G"
	MsgTypeOrderStatusRequest                      = "H"
	MsgTypeAllocationInstruction                   = "J"
	MsgTypeListCancelRequest                       = "K"
	MsgTypeListExecute                             = "L"
	MsgTypeListStatusRequest                       = "M"
	MsgTypeListStatus                              = "N"
	MsgTypeAllocationInstructionAck                = "P"
	MsgTypeDontKnowTrade                           = "Q"
	MsgTypeQuoteRequest                            = "R"
	MsgTypeQuote                                   = "S"
	MsgTypeSettlementInstructions                  = "T"
	MsgTypeMarketDataRequest                       = "V"
	MsgTypeMarketDataSnapshotFullRefresh           = "W"
	MsgTypeMarketDataIncrementalRefresh            = "X"
	MsgTypeMarketDataRequestReject                 = "Y"
	MsgTypeQuoteCancel                             = "Z"
	MsgTypeQuoteStatusRequest                      = "a"
	MsgTypeMassQuoteAcknowledgement                = "b"
	MsgTypeSecurityDefinitionRequest               = "c"
	MsgTypeSecurityDefinition                      = "d"
	MsgTypeSecurityStatusRequest                   = "e"
	MsgTypeSecurityStatus                          = "f"
	MsgTypeTradingSessionStatusRequest             = "g"
	MsgTypeTradingSessionStatus                    = "h"
	MsgTypeMassQuote                               = "i"
	MsgTypeBusinessMessageReject                   = "j"
	MsgTypeBidRequest                              = "k"
	MsgTypeBidResponse                             = "l"
	MsgTypeListStrikePrice                         = "m"
	MsgTypeXMLnonFIX                               = "n"
	MsgTypeRegistrationInstructions                = "o"
	MsgTypeRegistrationInstructionsResponse        = "p"
	MsgTypeOrderMassCancelRequest                  = "q"
	MsgTypeOrderMassCancelReport                   = "r"
	MsgTypeNewOrderCross                           = "s"
	MsgTypeCrossOrderCancelReplaceRequest          = "t"
	MsgTypeCrossOrderCancelRequest                 = "u"
	MsgTypeSecurityTypeRequest                     = "v"
	MsgTypeSecurityTypes                           = "w"
	MsgTypeSecurityListRequest                     = "x"
	MsgTypeSecurityList                            = "y"
	MsgTypeDerivativeSecurityListRequest           = "z"
	MsgTypeDerivativeSecurityList                  = "AA"
	MsgTypeNewOrderMultileg                        = "AB"
	MsgTypeMultilegOrderCancelReplace              = "AC"
	MsgTypeTradeCaptureReportRequest               = "AD"
	MsgTypeTradeCaptureReport                      = "AE"
	MsgTypeOrderMassStatusRequest                  = "AF"
	MsgTypeQuoteRequestReject                      = "AG"
	MsgTypeRFQRequest                              = "AH"
	MsgTypeQuoteStatusReport                       = "AI"
	MsgTypeQuoteResponse                           = "AJ"
	MsgTypeConfirmation                            = "AK"
	MsgTypePositionMaintenanceRequest              = "AL"
	MsgTypePositionMaintenanceReport               = "AM"
	MsgTypeRequestForPositions                     = "AN"
	MsgTypeRequestForPositionsAck                  = "AO"
	MsgTypePositionReport                          = "AP"
	MsgTypeTradeCaptureReportRequestAck            = "AQ"
	MsgTypeTradeCaptureReportAck                   = "AR"
	MsgTypeAllocationReport                        = "AS"
	MsgTypeAllocationReportAck                     = "AT"
	MsgTypeConfirmationAck                         = "AU"
	MsgTypeSettlementInstructionRequest            = "AV"
	MsgTypeAssignmentReport                        = "AW"
	MsgTypeCollateralRequest                       = "AX"
	MsgTypeCollateralAssignment                    = "AY"
	MsgTypeCollateralResponse                      = "AZ"
	MsgTypeCollateralReport                        = "BA"
	MsgTypeCollateralInquiry                       = "BB"
	MsgTypeNetworkCounterpartySystemStatusRequest  = "BC"
	MsgTypeNetworkCounterpartySystemStatusResponse = "BD"
	MsgTypeUserRequest                             = "BE"
	MsgTypeUserResponse                            = "BF"
	MsgTypeCollateralInquiryAck                    = "BG"
	MsgTypeConfirmationRequest                     = "BH"
	MsgTypeUserNotification                        = "CB"
)

var msgTypeNames = map[string]string{
	MsgTypeHeartbeat:                               "Heartbeat",
	MsgTypeTestRequest:                             "TestRequest",
	MsgTypeResendRequest:                           "ResendRequest",
	MsgTypeReject:                                  "Reject",
	MsgTypeSequenceReset:                           "SequenceReset",
	MsgTypeLogout:                                  "Logout",
	MsgTypeIOI:                                     "IOI",
	MsgTypeAdvertisement:                           "Advertisement",
	MsgTypeExecutionReport:                         "ExecutionReport",
	MsgTypeOrderCancelReject:                       "OrderCancelReject",
	MsgTypeLogon:                                   "Logon",
	MsgTypeNews:                                    "News",
	MsgTypeEmail:                                   "Email",
	MsgTypeNewOrderSingle:                          "NewOrderSingle",
	MsgTypeNewOrderList:                            "NewOrderList",
	MsgTypeOrderCancelRequest:                      "OrderCancelRequest",
	MsgTypeOrderCancelReplaceRequest:               "OrderCancelReplaceRequest",
	MsgTypeOrderStatusRequest:                      "OrderStatusRequest",
	MsgTypeAllocationInstruction:                   "AllocationInstruction",
	MsgTypeListCancelRequest:                       "ListCancelRequest",
	MsgTypeListExecute:                             "ListExecute",
	MsgTypeListStatusRequest:                       "ListStatusRequest",
	MsgTypeListStatus:                              "ListStatus",
	MsgTypeAllocationInstructionAck:                "AllocationInstructionAck",
	MsgTypeDontKnowTrade:                           "DontKnowTrade",
	MsgTypeQuoteRequest:                            "QuoteRequest",
	MsgTypeQuote:                                   "Quote",
	MsgTypeSettlementInstructions:                  "SettlementInstructions",
	MsgTypeMarketDataRequest:                       "MarketDataRequest",
	MsgTypeMarketDataSnapshotFullRefresh:           "MarketDataSnapshotFullRefresh",
	MsgTypeMarketDataIncrementalRefresh:            "MarketDataIncrementalRefresh",
	MsgTypeMarketDataRequestReject:                 "MarketDataRequestReject",
	MsgTypeQuoteCancel:                             "QuoteCancel",
	MsgTypeQuoteStatusRequest:                      "QuoteStatusRequest",
	MsgTypeMassQuoteAcknowledgement:                "MassQuoteAcknowledgement",
	MsgTypeSecurityDefinitionRequest:               "SecurityDefinitionRequest",
	MsgTypeSecurityDefinition:                      "SecurityDefinition",
	MsgTypeSecurityStatusRequest:                   "SecurityStatusRequest",
	MsgTypeSecurityStatus:                          "SecurityStatus",
	MsgTypeTradingSessionStatusRequest:             "TradingSessionStatusRequest",
	MsgTypeTradingSessionStatus:                    "TradingSessionStatus",
	MsgTypeMassQuote:                               "MassQuote",
	MsgTypeBusinessMessageReject:                   "BusinessMessageReject",
	MsgTypeBidRequest:                              "BidRequest",
	MsgTypeBidResponse:                             "BidResponse",
	MsgTypeListStrikePrice:                         "ListStrikePrice",
	MsgTypeXMLnonFIX:                               "XMLnonFIX",
	MsgTypeRegistrationInstructions:                "RegistrationInstructions",
	MsgTypeRegistrationInstructionsResponse:        "RegistrationInstructionsResponse",
	MsgTypeOrderMassCancelRequest:                  "OrderMassCancelRequest",
	MsgTypeOrderMassCancelReport:                   "OrderMassCancelReport",
	MsgTypeNewOrderCross:                           "NewOrderCross",
	MsgTypeCrossOrderCancelReplaceRequest:          "CrossOrderCancelReplaceRequest",
	MsgTypeCrossOrderCancelRequest:                 "CrossOrderCancelRequest",
	MsgTypeSecurityTypeRequest:                     "SecurityTypeRequest",
	MsgTypeSecurityTypes:                           "SecurityTypes",
	MsgTypeSecurityListRequest:                     "SecurityListRequest",
	MsgTypeSecurityList:                            "SecurityList",
	MsgTypeDerivativeSecurityListRequest:           "DerivativeSecurityListRequest",
	MsgTypeDerivativeSecurityList:                  "DerivativeSecurityList",
	MsgTypeNewOrderMultileg:                        "NewOrderMultileg",
	MsgTypeMultilegOrderCancelReplace:              "MultilegOrderCancelReplace",
	MsgTypeTradeCaptureReportRequest:               "TradeCaptureReportRequest",
	MsgTypeTradeCaptureReport:                      "TradeCaptureReport",
	MsgTypeOrderMassStatusRequest:                  "OrderMassStatusRequest",
	MsgTypeQuoteRequestReject:                      "QuoteRequestReject",
	MsgTypeRFQRequest:                              "RFQRequest",
	MsgTypeQuoteStatusReport:                       "QuoteStatusReport",
	MsgTypeQuoteResponse:                           "QuoteResponse",
	MsgTypeConfirmation:                            "Confirmation",
	MsgTypePositionMaintenanceRequest:              "PositionMaintenanceRequest",
	MsgTypePositionMaintenanceReport:               "PositionMaintenanceReport",
	MsgTypeRequestForPositions:                     "RequestForPositions",
	MsgTypeRequestForPositionsAck:                  "RequestForPositionsAck",
	MsgTypePositionReport:                          "PositionReport",
	MsgTypeTradeCaptureReportRequestAck:            "TradeCaptureReportRequestAck",
	MsgTypeTradeCaptureReportAck:                   "TradeCaptureReportAck",
	MsgTypeAllocationReport:                        "AllocationReport",
	MsgTypeAllocationReportAck:                     "AllocationReportAck",
	MsgTypeConfirmationAck:                         "ConfirmationAck",
	MsgTypeSettlementInstructionRequest:            "SettlementInstructionRequest",
	MsgTypeAssignmentReport:                        "AssignmentReport",
	MsgTypeCollateralRequest:                       "CollateralRequest",
	MsgTypeCollateralAssignment:                    "CollateralAssignment",
	MsgTypeCollateralResponse:                      "CollateralResponse",
	MsgTypeCollateralReport:                        "CollateralReport",
	MsgTypeCollateralInquiry:                       "CollateralInquiry",
	MsgTypeNetworkCounterpartySystemStatusRequest:  "NetworkCounterpartySystemStatusRequest",
	MsgTypeNetworkCounterpartySystemStatusResponse: "NetworkCounterpartySystemStatusResponse",
	MsgTypeUserRequest:                             "UserRequest",
	MsgTypeUserResponse:                            "UserResponse",
	MsgTypeCollateralInquiryAck:                    "CollateralInquiryAck",
	MsgTypeConfirmationRequest:                     "ConfirmationRequest",
	MsgTypeUserNotification:                        "UserNotification",
}
