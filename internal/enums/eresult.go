package enums

// EResult is a request outcome code. Value 4 is unassigned.
type EResult uint32

const (
	EResultInvalid                                 EResult = 0
	EResultOK                                      EResult = 1
	EResultFail                                    EResult = 2
	EResultNoConnection                            EResult = 3
	EResultInvalidPassword                         EResult = 5
	EResultLoggedInElsewhere                       EResult = 6
	EResultInvalidProtocolVer                      EResult = 7
	EResultInvalidParam                            EResult = 8
	EResultFileNotFound                            EResult = 9
	EResultBusy                                    EResult = 10
	EResultInvalidState                            EResult = 11
	EResultInvalidName                             EResult = 12
	EResultInvalidEmail                            EResult = 13
	EResultDuplicateName                           EResult = 14
	EResultAccessDenied                            EResult = 15
	EResultTimeout                                 EResult = 16
	EResultBanned                                  EResult = 17
	EResultAccountNotFound                         EResult = 18
	EResultInvalidSteamID                          EResult = 19
	EResultServiceUnavailable                      EResult = 20
	EResultNotLoggedOn                             EResult = 21
	EResultPending                                 EResult = 22
	EResultEncryptionFailure                       EResult = 23
	EResultInsufficientPrivilege                   EResult = 24
	EResultLimitExceeded                           EResult = 25
	EResultRevoked                                 EResult = 26
	EResultExpired                                 EResult = 27
	EResultAlreadyRedeemed                         EResult = 28
	EResultDuplicateRequest                        EResult = 29
	EResultAlreadyOwned                            EResult = 30
	EResultIPNotFound                              EResult = 31
	EResultPersistFailed                           EResult = 32
	EResultLockingFailed                           EResult = 33
	EResultLogonSessionReplaced                    EResult = 34
	EResultConnectFailed                           EResult = 35
	EResultHandshakeFailed                         EResult = 36
	EResultIOFailure                               EResult = 37
	EResultRemoteDisconnect                        EResult = 38
	EResultShoppingCartNotFound                    EResult = 39
	EResultBlocked                                 EResult = 40
	EResultIgnored                                 EResult = 41
	EResultNoMatch                                 EResult = 42
	EResultAccountDisabled                         EResult = 43
	EResultServiceReadOnly                         EResult = 44
	EResultAccountNotFeatured                      EResult = 45
	EResultAdministratorOK                         EResult = 46
	EResultContentVersion                          EResult = 47
	EResultTryAnotherCM                            EResult = 48
	EResultPasswordRequiredToKickSession           EResult = 49
	EResultAlreadyLoggedInElsewhere                EResult = 50
	EResultSuspended                               EResult = 51
	EResultCancelled                               EResult = 52
	EResultDataCorruption                          EResult = 53
	EResultDiskFull                                EResult = 54
	EResultRemoteCallFailed                        EResult = 55
	EResultPasswordUnset                           EResult = 56
	EResultExternalAccountUnlinked                 EResult = 57
	EResultPSNTicketInvalid                        EResult = 58
	EResultExternalAccountAlreadyLinked            EResult = 59
	EResultRemoteFileConflict                      EResult = 60
	EResultIllegalPassword                         EResult = 61
	EResultSameAsPreviousValue                     EResult = 62
	EResultAccountLogonDenied                      EResult = 63
	EResultCannotUseOldPassword                    EResult = 64
	EResultInvalidLoginAuthCode                    EResult = 65
	EResultAccountLogonDeniedNoMail                EResult = 66
	EResultHardwareNotCapableOfIPT                 EResult = 67
	EResultIPTInitError                            EResult = 68
	EResultParentalControlRestricted               EResult = 69
	EResultFacebookQueryError                      EResult = 70
	EResultExpiredLoginAuthCode                    EResult = 71
	EResultIPLoginRestrictionFailed                EResult = 72
	EResultAccountLockedDown                       EResult = 73
	EResultAccountLogonDeniedVerifiedEmailRequired EResult = 74
	EResultNoMatchingURL                           EResult = 75
	EResultBadResponse                             EResult = 76
	EResultRequirePasswordReEntry                  EResult = 77
	EResultValueOutOfRange                         EResult = 78
	EResultUnexpectedError                         EResult = 79
	EResultDisabled                                EResult = 80
	EResultInvalidCEGSubmission                    EResult = 81
	EResultRestrictedDevice                        EResult = 82
	EResultRegionLocked                            EResult = 83
	EResultRateLimitExceeded                       EResult = 84
	EResultAccountLoginDeniedNeedTwoFactor         EResult = 85
	EResultItemDeleted                             EResult = 86
	EResultAccountLoginDeniedThrottle              EResult = 87
	EResultTwoFactorCodeMismatch                   EResult = 88
	EResultTwoFactorActivationCodeMismatch         EResult = 89
	EResultAccountAssociatedToMultiplePartners     EResult = 90
	EResultNotModified                             EResult = 91
	EResultNoMobileDevice                          EResult = 92
	EResultTimeNotSynced                           EResult = 93
	EResultSMSCodeFailed                           EResult = 94
	EResultAccountLimitExceeded                    EResult = 95
	EResultAccountActivityLimitExceeded            EResult = 96
	EResultPhoneActivityLimitExceeded              EResult = 97
	EResultRefundToWallet                          EResult = 98
	EResultEmailSendFailure                        EResult = 99
	EResultNotSettled                              EResult = 100
	EResultNeedCaptcha                             EResult = 101
	EResultGSLTDenied                              EResult = 102
	EResultGSOwnerDenied                           EResult = 103
	EResultInvalidItemType                         EResult = 104
	EResultIPBanned                                EResult = 105
	EResultGSLTExpired                             EResult = 106
	EResultInsufficientFunds                       EResult = 107
	EResultTooManyPending                          EResult = 108
	EResultNoSiteLicensesFound                     EResult = 109
	EResultWGNetworkSendExceeded                   EResult = 110
	EResultAccountNotFriends                       EResult = 111
	EResultLimitedUserAccount                      EResult = 112
	EResultCantRemoveItem                          EResult = 113
	EResultAccountDeleted                          EResult = 114
	EResultExistingUserCancelledLicense            EResult = 115
	EResultCommunityCooldown                       EResult = 116
	EResultNoLauncherSpecified                     EResult = 117
	EResultMustAgreeToSSA                          EResult = 118
	EResultLauncherMigrated                        EResult = 119
	EResultSteamRealmMismatch                      EResult = 120
	EResultInvalidSignature                        EResult = 121
	EResultParseFailure                            EResult = 122
	EResultNoVerifiedPhone                         EResult = 123
	EResultInsufficientBattery                     EResult = 124
	EResultChargerRequired                         EResult = 125
	EResultCachedCredentialInvalid                 EResult = 126
	EResultPhoneNumberIsVOIP                       EResult = 127
)

var eresultTable = newTable("EResult", map[EResult]string{
	EResultInvalid:                                 "Invalid",
	EResultOK:                                      "OK",
	EResultFail:                                    "Fail",
	EResultNoConnection:                            "NoConnection",
	EResultInvalidPassword:                         "InvalidPassword",
	EResultLoggedInElsewhere:                       "LoggedInElsewhere",
	EResultInvalidProtocolVer:                      "InvalidProtocolVer",
	EResultInvalidParam:                            "InvalidParam",
	EResultFileNotFound:                            "FileNotFound",
	EResultBusy:                                    "Busy",
	EResultInvalidState:                            "InvalidState",
	EResultInvalidName:                             "InvalidName",
	EResultInvalidEmail:                            "InvalidEmail",
	EResultDuplicateName:                           "DuplicateName",
	EResultAccessDenied:                            "AccessDenied",
	EResultTimeout:                                 "Timeout",
	EResultBanned:                                  "Banned",
	EResultAccountNotFound:                         "AccountNotFound",
	EResultInvalidSteamID:                          "InvalidSteamID",
	EResultServiceUnavailable:                      "ServiceUnavailable",
	EResultNotLoggedOn:                             "NotLoggedOn",
	EResultPending:                                 "Pending",
	EResultEncryptionFailure:                       "EncryptionFailure",
	EResultInsufficientPrivilege:                   "InsufficientPrivilege",
	EResultLimitExceeded:                           "LimitExceeded",
	EResultRevoked:                                 "Revoked",
	EResultExpired:                                 "Expired",
	EResultAlreadyRedeemed:                         "AlreadyRedeemed",
	EResultDuplicateRequest:                        "DuplicateRequest",
	EResultAlreadyOwned:                            "AlreadyOwned",
	EResultIPNotFound:                              "IPNotFound",
	EResultPersistFailed:                           "PersistFailed",
	EResultLockingFailed:                           "LockingFailed",
	EResultLogonSessionReplaced:                    "LogonSessionReplaced",
	EResultConnectFailed:                           "ConnectFailed",
	EResultHandshakeFailed:                         "HandshakeFailed",
	EResultIOFailure:                               "IOFailure",
	EResultRemoteDisconnect:                        "RemoteDisconnect",
	EResultShoppingCartNotFound:                    "ShoppingCartNotFound",
	EResultBlocked:                                 "Blocked",
	EResultIgnored:                                 "Ignored",
	EResultNoMatch:                                 "NoMatch",
	EResultAccountDisabled:                         "AccountDisabled",
	EResultServiceReadOnly:                         "ServiceReadOnly",
	EResultAccountNotFeatured:                      "AccountNotFeatured",
	EResultAdministratorOK:                         "AdministratorOK",
	EResultContentVersion:                          "ContentVersion",
	EResultTryAnotherCM:                            "TryAnotherCM",
	EResultPasswordRequiredToKickSession:           "PasswordRequiredToKickSession",
	EResultAlreadyLoggedInElsewhere:                "AlreadyLoggedInElsewhere",
	EResultSuspended:                               "Suspended",
	EResultCancelled:                               "Cancelled",
	EResultDataCorruption:                          "DataCorruption",
	EResultDiskFull:                                "DiskFull",
	EResultRemoteCallFailed:                        "RemoteCallFailed",
	EResultPasswordUnset:                           "PasswordUnset",
	EResultExternalAccountUnlinked:                 "ExternalAccountUnlinked",
	EResultPSNTicketInvalid:                        "PSNTicketInvalid",
	EResultExternalAccountAlreadyLinked:            "ExternalAccountAlreadyLinked",
	EResultRemoteFileConflict:                      "RemoteFileConflict",
	EResultIllegalPassword:                         "IllegalPassword",
	EResultSameAsPreviousValue:                     "SameAsPreviousValue",
	EResultAccountLogonDenied:                      "AccountLogonDenied",
	EResultCannotUseOldPassword:                    "CannotUseOldPassword",
	EResultInvalidLoginAuthCode:                    "InvalidLoginAuthCode",
	EResultAccountLogonDeniedNoMail:                "AccountLogonDeniedNoMail",
	EResultHardwareNotCapableOfIPT:                 "HardwareNotCapableOfIPT",
	EResultIPTInitError:                            "IPTInitError",
	EResultParentalControlRestricted:               "ParentalControlRestricted",
	EResultFacebookQueryError:                      "FacebookQueryError",
	EResultExpiredLoginAuthCode:                    "ExpiredLoginAuthCode",
	EResultIPLoginRestrictionFailed:                "IPLoginRestrictionFailed",
	EResultAccountLockedDown:                       "AccountLockedDown",
	EResultAccountLogonDeniedVerifiedEmailRequired: "AccountLogonDeniedVerifiedEmailRequired",
	EResultNoMatchingURL:                           "NoMatchingURL",
	EResultBadResponse:                             "BadResponse",
	EResultRequirePasswordReEntry:                  "RequirePasswordReEntry",
	EResultValueOutOfRange:                         "ValueOutOfRange",
	EResultUnexpectedError:                         "UnexpectedError",
	EResultDisabled:                                "Disabled",
	EResultInvalidCEGSubmission:                    "InvalidCEGSubmission",
	EResultRestrictedDevice:                        "RestrictedDevice",
	EResultRegionLocked:                            "RegionLocked",
	EResultRateLimitExceeded:                       "RateLimitExceeded",
	EResultAccountLoginDeniedNeedTwoFactor:         "AccountLoginDeniedNeedTwoFactor",
	EResultItemDeleted:                             "ItemDeleted",
	EResultAccountLoginDeniedThrottle:              "AccountLoginDeniedThrottle",
	EResultTwoFactorCodeMismatch:                   "TwoFactorCodeMismatch",
	EResultTwoFactorActivationCodeMismatch:         "TwoFactorActivationCodeMismatch",
	EResultAccountAssociatedToMultiplePartners:     "AccountAssociatedToMultiplePartners",
	EResultNotModified:                             "NotModified",
	EResultNoMobileDevice:                          "NoMobileDevice",
	EResultTimeNotSynced:                           "TimeNotSynced",
	EResultSMSCodeFailed:                           "SMSCodeFailed",
	EResultAccountLimitExceeded:                    "AccountLimitExceeded",
	EResultAccountActivityLimitExceeded:            "AccountActivityLimitExceeded",
	EResultPhoneActivityLimitExceeded:              "PhoneActivityLimitExceeded",
	EResultRefundToWallet:                          "RefundToWallet",
	EResultEmailSendFailure:                        "EmailSendFailure",
	EResultNotSettled:                              "NotSettled",
	EResultNeedCaptcha:                             "NeedCaptcha",
	EResultGSLTDenied:                              "GSLTDenied",
	EResultGSOwnerDenied:                           "GSOwnerDenied",
	EResultInvalidItemType:                         "InvalidItemType",
	EResultIPBanned:                                "IPBanned",
	EResultGSLTExpired:                             "GSLTExpired",
	EResultInsufficientFunds:                       "InsufficientFunds",
	EResultTooManyPending:                          "TooManyPending",
	EResultNoSiteLicensesFound:                     "NoSiteLicensesFound",
	EResultWGNetworkSendExceeded:                   "WGNetworkSendExceeded",
	EResultAccountNotFriends:                       "AccountNotFriends",
	EResultLimitedUserAccount:                      "LimitedUserAccount",
	EResultCantRemoveItem:                          "CantRemoveItem",
	EResultAccountDeleted:                          "AccountDeleted",
	EResultExistingUserCancelledLicense:            "ExistingUserCancelledLicense",
	EResultCommunityCooldown:                       "CommunityCooldown",
	EResultNoLauncherSpecified:                     "NoLauncherSpecified",
	EResultMustAgreeToSSA:                          "MustAgreeToSSA",
	EResultLauncherMigrated:                        "LauncherMigrated",
	EResultSteamRealmMismatch:                      "SteamRealmMismatch",
	EResultInvalidSignature:                        "InvalidSignature",
	EResultParseFailure:                            "ParseFailure",
	EResultNoVerifiedPhone:                         "NoVerifiedPhone",
	EResultInsufficientBattery:                     "InsufficientBattery",
	EResultChargerRequired:                         "ChargerRequired",
	EResultCachedCredentialInvalid:                 "CachedCredentialInvalid",
	EResultPhoneNumberIsVOIP:                       "PhoneNumberIsVOIP",
})

// ResultDomain resolves result codes.
var ResultDomain Domain = eresultTable

func (r EResult) String() string {
	return eresultTable.format(r)
}
