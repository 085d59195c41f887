package controller

var StatusOf = statusOf
