package handler

import (
	"codecircle/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	postHandler         *PostHandler
	commentHandler      *CommentHandler
	adminHandler        *AdminHandler
	notificationHandler *NotificationHandler
	membershipHandler   *MembershipHandler
	tagHandler          *TagHandler
	announcementHandler *AnnouncementHandler
	chatHandler         *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	postUseCase *usecase.PostUseCase,
	commentUseCase *usecase.CommentUseCase,
	moderationUseCase *usecase.ModerationUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	membershipUseCase *usecase.MembershipUseCase,
	tagUseCase *usecase.TagUseCase,
	announcementUseCase *usecase.AnnouncementUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, authUseCase)
	postHandler = NewPostHandler(postUseCase)
	commentHandler = NewCommentHandler(commentUseCase)
	adminHandler = NewAdminHandler(moderationUseCase, commentUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	membershipHandler = NewMembershipHandler(membershipUseCase)
	tagHandler = NewTagHandler(tagUseCase)
	announcementHandler = NewAnnouncementHandler(announcementUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetCommentHandler() *CommentHandler {
	return commentHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetMembershipHandler() *MembershipHandler {
	return membershipHandler
}

func GetTagHandler() *TagHandler {
	return tagHandler
}

func GetAnnouncementHandler() *AnnouncementHandler {
	return announcementHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
