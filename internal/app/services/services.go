package services

// Services defined in this package:
// - AuthService: account registration, login and token rotation
// - ProfileService: my-page, staff point adjustment and profile search
// - DormService: dorm applications and staff room assignment
// - OutingService: outing applications and staff decisions
// - PostService: community board posts, comments and likes
// - InquiryService: inquiry desk questions and staff answers
// - NoticeService: staff announcements
