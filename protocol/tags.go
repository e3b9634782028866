package protocol

// Tag numbers of the FIX 4.4 fields known to the default directory.
const (
	TagAccount                 = 1
	TagAdvId                   = 2
	TagAdvRefID                = 3
	TagAdvSide                 = 4
	TagAdvTransType            = 5
	TagAvgPx                   = 6
	TagBeginSeqNo              = 7
	TagBeginString             = 8
	TagBodyLength              = 9
	TagCheckSum                = 10
	TagClOrdID                 = 11
	TagCommission              = 12
	TagCommType                = 13
	TagCumQty                  = 14
	TagCurrency                = 15
	TagEndSeqNo                = 16
	TagExecID                  = 17
	TagExecInst                = 18
	TagExecRefID               = 19
	TagHandlInst               = 21
	TagSecurityIDSource        = 22
	TagIOIID                   = 23
	TagIOIQltyInd              = 25
	TagIOIRefID                = 26
	TagIOIQty                  = 27
	TagIOITransType            = 28
	TagLastCapacity            = 29
	TagLastMkt                 = 30
	TagLastPx                  = 31
	TagLastQty                 = 32
	TagNoLinesOfText           = 33
	TagMsgSeqNum               = 34
	TagMsgType                 = 35
	TagNewSeqNo                = 36
	TagOrderID                 = 37
	TagOrderQty                = 38
	TagOrdStatus               = 39
	TagOrdType                 = 40
	TagOrigClOrdID             = 41
	TagOrigTime                = 42
	TagPossDupFlag             = 43
	TagPrice                   = 44
	TagRefSeqNum               = 45
	TagSecurityID              = 48
	TagSenderCompID            = 49
	TagSenderSubID             = 50
	TagSendingTime             = 52
	TagQuantity                = 53
	TagSide                    = 54
	TagSymbol                  = 55
	TagTargetCompID            = 56
	TagTargetSubID             = 57
	TagText                    = 58
	TagTimeInForce             = 59
	TagTransactTime            = 60
	TagUrgency                 = 61
	TagValidUntilTime          = 62
	TagSettlType               = 63
	TagSettlDate               = 64
	TagSymbolSfx               = 65
	TagListID                  = 66
	TagListSeqNo               = 67
	TagTotNoOrders             = 68
	TagListExecInst            = 69
	TagAllocID                 = 70
	TagAllocTransType          = 71
	TagRefAllocID              = 72
	TagNoOrders                = 73
	TagAvgPxPrecision          = 74
	TagTradeDate               = 75
	TagPositionEffect          = 77
	TagNoAllocs                = 78
	TagAllocAccount            = 79
	TagAllocQty                = 80
	TagProcessCode             = 81
	TagNoRpts                  = 82
	TagRptSeq                  = 83
	TagCxlQty                  = 84
	TagAllocStatus             = 87
	TagAllocRejCode            = 88
	TagSignature               = 89
	TagSecureDataLen           = 90
	TagSecureData              = 91
	TagSignatureLength         = 93
	TagEmailType               = 94
	TagRawDataLength           = 95
	TagRawData                 = 96
	TagPossResend              = 97
	TagEncryptMethod           = 98
	TagStopPx                  = 99
	TagExDestination           = 100
	TagCxlRejReason            = 102
	TagOrdRejReason            = 103
	TagIOIQualifier            = 104
	TagIssuer                  = 106
	TagSecurityDesc            = 107
	TagHeartBtInt              = 108
	TagMinQty                  = 110
	TagMaxFloor                = 111
	TagTestReqID               = 112
	TagLocateReqd              = 114
	TagOnBehalfOfCompID        = 115
	TagOnBehalfOfSubID         = 116
	TagQuoteID                 = 117
	TagNetMoney                = 118
	TagSettlCurrAmt            = 119
	TagSettlCurrency           = 120
	TagForexReq                = 121
	TagOrigSendingTime         = 122
	TagGapFillFlag             = 123
	TagNoExecs                 = 124
	TagExpireTime              = 126
	TagDKReason                = 127
	TagDeliverToCompID         = 128
	TagDeliverToSubID          = 129
	TagIOINaturalFlag          = 130
	TagQuoteReqID              = 131
	TagBidPx                   = 132
	TagOfferPx                 = 133
	TagBidSize                 = 134
	TagOfferSize               = 135
	TagNoMiscFees              = 136
	TagMiscFeeAmt              = 137
	TagMiscFeeCurr             = 138
	TagMiscFeeType             = 139
	TagPrevClosePx             = 140
	TagResetSeqNumFlag         = 141
	TagSenderLocationID        = 142
	TagTargetLocationID        = 143
	TagOnBehalfOfLocationID    = 144
	TagDeliverToLocationID     = 145
	TagNoRelatedSym            = 146
	TagSubject                 = 147
	TagHeadline                = 148
	TagURLLink                 = 149
	TagExecType                = 150
	TagLeavesQty               = 151
	TagCashOrderQty            = 152
	TagEmailThreadID           = 164
	TagSecurityType            = 167
	TagMaturityMonthYear       = 200
	TagSecurityExchange        = 207
	TagXmlDataLen              = 212
	TagXmlData                 = 213
	TagNoRoutingIDs            = 215
	TagRoutingType             = 216
	TagRoutingID               = 217
	TagMDReqID                 = 262
	TagSubscriptionRequestType = 263
	TagMarketDepth             = 264
	TagMDUpdateType            = 265
	TagNoMDEntryTypes          = 267
	TagNoMDEntries             = 268
	TagMDEntryType             = 269
	TagMDEntryPx               = 270
	TagMDEntrySize             = 271
	TagMDEntryDate             = 272
	TagMDEntryTime             = 273
	TagMDUpdateAction          = 279
	TagMDReqRejReason          = 281
	TagMessageEncoding         = 347
	TagEncodedTextLen          = 354
	TagEncodedText             = 355
	TagLastMsgSeqNumProcessed  = 369
	TagRefTagID                = 371
	TagRefMsgType              = 372
	TagSessionRejectReason     = 373
	TagMaxMessageSize          = 383
	TagNoMsgTypes              = 384
	TagMsgDirection            = 385
	TagPartyIDSource           = 447
	TagPartyID                 = 448
	TagPartyRole               = 452
	TagNoPartyIDs              = 453
	TagNoSecurityAltID         = 454
	TagSecurityAltID           = 455
	TagSecurityAltIDSource     = 456
	TagTestMessageIndicator    = 464
	TagPartySubID              = 523
	TagNestedPartyID           = 524
	TagNestedPartyIDSource     = 525
	TagNestedPartyRole         = 538
	TagNoNestedPartyIDs        = 539
	TagNestedPartySubID        = 545
	TagUsername                = 553
	TagPassword                = 554
	TagNextExpectedMsgSeqNum   = 789
	TagNoPartySubIDs           = 802
	TagPartySubIDType          = 803
	TagNoNestedPartySubIDs     = 804
	TagNestedPartySubIDType    = 805
	TagApplVerID               = 1128
	TagCstmApplVerID           = 1129
	TagDefaultApplVerID        = 1137
)

var tagNames = map[int]string{
	TagAccount:                 "Account",
	TagAdvId:                   "AdvId",
	TagAdvRefID:                "AdvRefID",
	TagAdvSide:                 "AdvSide",
	TagAdvTransType:            "AdvTransType",
	TagAvgPx:                   "AvgPx",
	TagBeginSeqNo:              "BeginSeqNo",
	TagBeginString:             "BeginString",
	TagBodyLength:              "BodyLength",
	TagCheckSum:                "CheckSum",
	TagClOrdID:                 "ClOrdID",
	TagCommission:              "Commission",
	TagCommType:                "CommType",
	TagCumQty:                  "CumQty",
	TagCurrency:                "Currency",
	TagEndSeqNo:                "EndSeqNo",
	TagExecID:                  "ExecID",
	TagExecInst:                "ExecInst",
	TagExecRefID:               "ExecRefID",
	TagHandlInst:               "HandlInst",
	TagSecurityIDSource:        "SecurityIDSource",
	TagIOIID:                   "IOIID",
	TagIOIQltyInd:              "IOIQltyInd",
	TagIOIRefID:                "IOIRefID",
	TagIOIQty:                  "IOIQty",
	TagIOITransType:            "IOITransType",
	TagLastCapacity:            "LastCapacity",
	TagLastMkt:                 "LastMkt",
	TagLastPx:                  "LastPx",
	TagLastQty:                 "LastQty",
	TagNoLinesOfText:           "NoLinesOfText",
	TagMsgSeqNum:               "MsgSeqNum",
	TagMsgType:                 "MsgType",
	TagNewSeqNo:                "NewSeqNo",
	TagOrderID:                 "OrderID",
	TagOrderQty:                "OrderQty",
	TagOrdStatus:               "OrdStatus",
	TagOrdType:                 "OrdType",
	TagOrigClOrdID:             "OrigClOrdID",
	TagOrigTime:                "OrigTime",
	TagPossDupFlag:             "PossDupFlag",
	TagPrice:                   "Price",
	TagRefSeqNum:               "RefSeqNum",
	TagSecurityID:              "SecurityID",
	TagSenderCompID:            "SenderCompID",
	TagSenderSubID:             "SenderSubID",
	TagSendingTime:             "SendingTime",
	TagQuantity:                "Quantity",
	TagSide:                    "Side",
	TagSymbol:                  "Symbol",
	TagTargetCompID:            "TargetCompID",
	TagTargetSubID:             "TargetSubID",
	TagText:                    "Text",
	TagTimeInForce:             "TimeInForce",
	TagTransactTime:            "TransactTime",
	TagUrgency:                 "Urgency",
	TagValidUntilTime:          "ValidUntilTime",
	TagSettlType:               "SettlType",
	TagSettlDate:               "SettlDate",
	TagSymbolSfx:               "SymbolSfx",
	TagListID:                  "ListID",
	TagListSeqNo:               "ListSeqNo",
	TagTotNoOrders:             "TotNoOrders",
	TagListExecInst:            "ListExecInst",
	TagAllocID:                 "AllocID",
	TagAllocTransType:          "AllocTransType",
	TagRefAllocID:              "RefAllocID",
	TagNoOrders:                "NoOrders",
	TagAvgPxPrecision:          "AvgPxPrecision",
	TagTradeDate:               "TradeDate",
	TagPositionEffect:          "PositionEffect",
	TagNoAllocs:                "NoAllocs",
	TagAllocAccount:            "AllocAccount",
	TagAllocQty:                "AllocQty",
	TagProcessCode:             "ProcessCode",
	TagNoRpts:                  "NoRpts",
	TagRptSeq:                  "RptSeq",
	TagCxlQty:                  "CxlQty",
	TagAllocStatus:             "AllocStatus",
	TagAllocRejCode:            "AllocRejCode",
	TagSignature:               "Signature",
	TagSecureDataLen:           "SecureDataLen",
	TagSecureData:              "SecureData",
	TagSignatureLength:         "SignatureLength",
	TagEmailType:               "EmailType",
	TagRawDataLength:           "RawDataLength",
	TagRawData:                 "RawData",
	TagPossResend:              "PossResend",
	TagEncryptMethod:           "EncryptMethod",
	TagStopPx:                  "StopPx",
	TagExDestination:           "ExDestination",
	TagCxlRejReason:            "CxlRejReason",
	TagOrdRejReason:            "OrdRejReason",
	TagIOIQualifier:            "IOIQualifier",
	TagIssuer:                  "Issuer",
	TagSecurityDesc:            "SecurityDesc",
	TagHeartBtInt:              "HeartBtInt",
	TagMinQty:                  "MinQty",
	TagMaxFloor:                "MaxFloor",
	TagTestReqID:               "TestReqID",
	TagLocateReqd:              "LocateReqd",
	TagOnBehalfOfCompID:        "OnBehalfOfCompID",
	TagOnBehalfOfSubID:         "OnBehalfOfSubID",
	TagQuoteID:                 "QuoteID",
	TagNetMoney:                "NetMoney",
	TagSettlCurrAmt:            "SettlCurrAmt",
	TagSettlCurrency:           "SettlCurrency",
	TagForexReq:                "ForexReq",
	TagOrigSendingTime:         "OrigSendingTime",
	TagGapFillFlag:             "GapFillFlag",
	TagNoExecs:                 "NoExecs",
	TagExpireTime:              "ExpireTime",
	TagDKReason:                "DKReason",
	TagDeliverToCompID:         "DeliverToCompID",
	TagDeliverToSubID:          "DeliverToSubID",
	TagIOINaturalFlag:          "IOINaturalFlag",
	TagQuoteReqID:              "QuoteReqID",
	TagBidPx:                   "BidPx",
	TagOfferPx:                 "OfferPx",
	TagBidSize:                 "BidSize",
	TagOfferSize:               "OfferSize",
	TagNoMiscFees:              "NoMiscFees",
	TagMiscFeeAmt:              "MiscFeeAmt",
	TagMiscFeeCurr:             "MiscFeeCurr",
	TagMiscFeeType:             "MiscFeeType",
	TagPrevClosePx:             "PrevClosePx",
	TagResetSeqNumFlag:         "ResetSeqNumFlag",
	TagSenderLocationID:        "SenderLocationID",
	TagTargetLocationID:        "TargetLocationID",
	TagOnBehalfOfLocationID:    "OnBehalfOfLocationID",
	TagDeliverToLocationID:     "DeliverToLocationID",
	TagNoRelatedSym:            "NoRelatedSym",
	TagSubject:                 "Subject",
	TagHeadline:                "Headline",
	TagURLLink:                 "URLLink",
	TagExecType:                "ExecType",
	TagLeavesQty:               "LeavesQty",
	TagCashOrderQty:            "CashOrderQty",
	TagEmailThreadID:           "EmailThreadID",
	TagSecurityType:            "SecurityType",
	TagMaturityMonthYear:       "MaturityMonthYear",
	TagSecurityExchange:        "SecurityExchange",
	TagXmlDataLen:              "XmlDataLen",
	TagXmlData:                 "XmlData",
	TagNoRoutingIDs:            "NoRoutingIDs",
	TagRoutingType:             "RoutingType",
	TagRoutingID:               "RoutingID",
	TagMDReqID:                 "MDReqID",
	TagSubscriptionRequestType: "SubscriptionRequestType",
	TagMarketDepth:             "MarketDepth",
	TagMDUpdateType:            "MDUpdateType",
	TagNoMDEntryTypes:          "NoMDEntryTypes",
	TagNoMDEntries:             "NoMDEntries",
	TagMDEntryType:             "MDEntryType",
	TagMDEntryPx:               "MDEntryPx",
	TagMDEntrySize:             "MDEntrySize",
	TagMDEntryDate:             "MDEntryDate",
	TagMDEntryTime:             "MDEntryTime",
	TagMDUpdateAction:          "MDUpdateAction",
	TagMDReqRejReason:          "MDReqRejReason",
	TagMessageEncoding:         "MessageEncoding",
	TagEncodedTextLen:          "EncodedTextLen",
	TagEncodedText:             "EncodedText",
	TagLastMsgSeqNumProcessed:  "LastMsgSeqNumProcessed",
	TagRefTagID:                "RefTagID",
	TagRefMsgType:              "RefMsgType",
	TagSessionRejectReason:     "SessionRejectReason",
	TagMaxMessageSize:          "MaxMessageSize",
	TagNoMsgTypes:              "NoMsgTypes",
	TagMsgDirection:            "MsgDirection",
	TagPartyIDSource:           "PartyIDSource",
	TagPartyID:                 "PartyID",
	TagPartyRole:               "PartyRole",
	TagNoPartyIDs:              "NoPartyIDs",
	TagNoSecurityAltID:         "NoSecurityAltID",
	TagSecurityAltID:           "SecurityAltID",
	TagSecurityAltIDSource:     "SecurityAltIDSource",
	TagTestMessageIndicator:    "TestMessageIndicator",
	TagPartySubID:              "PartySubID",
	TagNestedPartyID:           "NestedPartyID",
	TagNestedPartyIDSource:     "NestedPartyIDSource",
	TagNestedPartyRole:         "NestedPartyRole",
	TagNoNestedPartyIDs:        "NoNestedPartyIDs",
	TagNestedPartySubID:        "NestedPartySubID",
	TagUsername:                "Username",
	TagPassword:                "Password",
	TagNextExpectedMsgSeqNum:   "NextExpectedMsgSeqNum",
	TagNoPartySubIDs:           "NoPartySubIDs",
	TagPartySubIDType:          "PartySubIDType",
	TagNoNestedPartySubIDs:     "NoNestedPartySubIDs",
	TagNestedPartySubIDType:    "NestedPartySubIDType",
	TagApplVerID:               "ApplVerID",
	TagCstmApplVerID:           "CstmApplVerID",
	TagDefaultApplVerID:        "DefaultApplVerID",
}
